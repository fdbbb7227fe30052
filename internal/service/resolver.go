package service

import "github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"

// Resolve maps a request parameter to a provider lookup key. Relative tags
// are passed through: only the provider knows its current head.
func Resolve(ref model.BlockReference) model.BlockIdentifier {
	switch ref.Tag() {
	case model.TagLatest:
		return model.LatestBlock()
	case model.TagEarliest:
		return model.EarliestBlock()
	case model.TagPending:
		return model.PendingBlock()
	default:
		return model.BlockByNumber(ref.Height())
	}
}
