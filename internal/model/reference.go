package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/pkg/safe"
)

// ErrInvalidBlockReference is returned when a request parameter is neither a
// non-negative height nor a supported tag.
var ErrInvalidBlockReference = errors.New("invalid block reference")

// BlockReference is the block parameter as it arrives over the wire: a JSON
// integer, a 0x-prefixed hex quantity or one of "latest", "earliest", "pending".
type BlockReference struct {
	tag    BlockTag
	number uint64
}

// ReferenceNumber builds a reference to an absolute height.
func ReferenceNumber(height uint64) BlockReference {
	return BlockReference{tag: TagNumber, number: height}
}

// ReferenceTag builds a reference to a relative tag.
func ReferenceTag(tag BlockTag) BlockReference {
	return BlockReference{tag: tag}
}

// Tag returns the reference variant.
func (r BlockReference) Tag() BlockTag {
	return r.tag
}

// Height returns the absolute height; it is meaningful only for TagNumber.
func (r BlockReference) Height() uint64 {
	return r.number
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BlockReference) UnmarshalJSON(data []byte) error {
	input := strings.TrimSpace(string(data))
	if len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"' {
		return r.unmarshalString(input[1 : len(input)-1])
	}

	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBlockReference, input)
	}
	height, err := safe.Uint64(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlockReference, err)
	}
	*r = ReferenceNumber(height)
	return nil
}

func (r *BlockReference) unmarshalString(s string) error {
	switch s {
	case "latest":
		*r = ReferenceTag(TagLatest)
		return nil
	case "earliest":
		*r = ReferenceTag(TagEarliest)
		return nil
	case "pending":
		*r = ReferenceTag(TagPending)
		return nil
	}

	height, err := hexutil.DecodeUint64(s)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidBlockReference, s, err)
	}
	*r = ReferenceNumber(height)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r BlockReference) MarshalJSON() ([]byte, error) {
	if r.tag == TagNumber {
		return []byte(strconv.Quote(hexutil.EncodeUint64(r.number))), nil
	}
	return []byte(strconv.Quote(r.tag.String())), nil
}
