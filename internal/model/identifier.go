// Package model defines the chain records read from data providers and the
// wire shapes returned by bulk_getBlockByNumber.
package model

import (
	"strconv"
)

// BlockTag discriminates the variants of BlockIdentifier.
type BlockTag uint8

const (
	// TagNumber addresses a block by absolute height.
	TagNumber BlockTag = iota
	// TagLatest addresses the provider's current canonical head.
	TagLatest
	// TagEarliest addresses the oldest block the provider knows about.
	TagEarliest
	// TagPending addresses the block currently being built.
	TagPending
)

// String returns the wire name of a relative tag.
func (t BlockTag) String() string {
	switch t {
	case TagLatest:
		return "latest"
	case TagEarliest:
		return "earliest"
	case TagPending:
		return "pending"
	default:
		return "number"
	}
}

// BlockIdentifier is a resolved block lookup key. The variant set is closed:
// values are only created through the constructors below.
type BlockIdentifier struct {
	tag    BlockTag
	number uint64
}

// BlockByNumber identifies the block at the given height.
func BlockByNumber(height uint64) BlockIdentifier {
	return BlockIdentifier{tag: TagNumber, number: height}
}

// LatestBlock identifies the canonical head.
func LatestBlock() BlockIdentifier {
	return BlockIdentifier{tag: TagLatest}
}

// EarliestBlock identifies the oldest known block.
func EarliestBlock() BlockIdentifier {
	return BlockIdentifier{tag: TagEarliest}
}

// PendingBlock identifies the block under construction.
func PendingBlock() BlockIdentifier {
	return BlockIdentifier{tag: TagPending}
}

// Tag returns the identifier variant.
func (id BlockIdentifier) Tag() BlockTag {
	return id.tag
}

// Number returns the height for TagNumber identifiers.
func (id BlockIdentifier) Number() (uint64, bool) {
	if id.tag != TagNumber {
		return 0, false
	}
	return id.number, true
}

func (id BlockIdentifier) String() string {
	if id.tag == TagNumber {
		return "#" + strconv.FormatUint(id.number, 10)
	}
	return id.tag.String()
}
