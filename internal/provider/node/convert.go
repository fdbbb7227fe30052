package node

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

func blockNumberArg(id model.BlockIdentifier) string {
	if n, ok := id.Number(); ok {
		return hexutil.EncodeUint64(n)
	}
	return id.Tag().String()
}

func convertBlock(b *rpcBlock, pending bool) (*model.ChainBlock, error) {
	seal, err := sealFields(b)
	if err != nil {
		return nil, err
	}

	out := &model.ChainBlock{
		ParentHash:       b.ParentHash,
		UncleHash:        b.UncleHash,
		StateRoot:        b.StateRoot,
		TransactionsRoot: b.TransactionsRoot,
		ReceiptsRoot:     b.ReceiptsRoot,
		LogsBloom:        b.LogsBloom,
		GasUsed:          uint64(b.GasUsed),
		GasLimit:         uint64(b.GasLimit),
		Timestamp:        uint64(b.Timestamp),
		Difficulty:       b.Difficulty.ToInt(),
		ExtraData:        b.ExtraData,
		SealFields:       seal,
		Uncles:           b.Uncles,
		Transactions:     make([]model.ChainTransaction, 0, len(b.Transactions)),
	}
	switch {
	case b.Author != nil:
		out.Author = *b.Author
	case b.Miner != nil:
		out.Author = *b.Miner
	}
	// Pending blocks have no canonical position yet.
	if !pending && b.Hash != nil && b.Number != nil {
		hash := *b.Hash
		number := uint64(*b.Number)
		out.Hash = &hash
		out.Number = &number
	}
	if b.Size != nil {
		size := uint64(*b.Size)
		out.Size = &size
	}

	for i, tx := range b.Transactions {
		converted, err := convertTransaction(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		out.Transactions = append(out.Transactions, converted)
	}
	return out, nil
}

// sealFields prefers the node's own seal fields and otherwise rebuilds them
// from the proof-of-work mix hash and nonce.
func sealFields(b *rpcBlock) ([][]byte, error) {
	if len(b.SealFields) > 0 {
		out := make([][]byte, len(b.SealFields))
		for i, f := range b.SealFields {
			out[i] = f
		}
		return out, nil
	}
	if b.MixHash == nil || b.Nonce == nil {
		return [][]byte{}, nil
	}

	mix, err := rlp.EncodeToBytes(*b.MixHash)
	if err != nil {
		return nil, fmt.Errorf("encode mix hash: %w", err)
	}
	nonce, err := rlp.EncodeToBytes(*b.Nonce)
	if err != nil {
		return nil, fmt.Errorf("encode nonce: %w", err)
	}
	return [][]byte{mix, nonce}, nil
}

func convertTransaction(t rpcTransaction) (model.ChainTransaction, error) {
	tx := t.tx
	raw, err := tx.MarshalBinary()
	if err != nil {
		return model.ChainTransaction{}, fmt.Errorf("encode %s: %w", tx.Hash(), err)
	}

	v, r, s := tx.RawSignatureValues()
	out := model.ChainTransaction{
		Hash:     tx.Hash(),
		Nonce:    tx.Nonce(),
		To:       tx.To(),
		Value:    tx.Value(),
		GasPrice: tx.GasPrice(),
		Gas:      tx.Gas(),
		Input:    tx.Data(),
		Raw:      raw,
		V:        v,
		R:        r,
		S:        s,
	}
	if tx.Protected() {
		out.ChainID = tx.ChainId()
	}
	if t.GasPrice != nil {
		out.GasPrice = t.GasPrice.ToInt()
	}
	if t.From != nil {
		out.From = *t.From
	}
	if t.BlockHash != nil {
		hash := *t.BlockHash
		out.BlockHash = &hash
	}
	if t.BlockNumber != nil {
		number := uint64(*t.BlockNumber)
		out.BlockNumber = &number
	}
	if t.TransactionIndex != nil {
		index := uint64(*t.TransactionIndex)
		out.TransactionIndex = &index
	}
	return out, nil
}

func convertReceipt(r *types.Receipt) *model.ChainReceipt {
	out := &model.ChainReceipt{
		TransactionHash:   r.TxHash,
		TransactionIndex:  uint64(r.TransactionIndex),
		BlockHash:         r.BlockHash,
		CumulativeGasUsed: r.CumulativeGasUsed,
		GasUsed:           r.GasUsed,
		LogsBloom:         r.Bloom,
		Logs:              make([]model.ChainLog, 0, len(r.Logs)),
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	if r.ContractAddress != (common.Address{}) {
		addr := r.ContractAddress
		out.ContractAddress = &addr
	}
	// Receipts carry either an intermediate state root or a status code.
	if len(r.PostState) > 0 {
		root := common.BytesToHash(r.PostState)
		out.Root = &root
	} else {
		status := r.Status
		out.Status = &status
	}

	for _, l := range r.Logs {
		if l == nil {
			continue
		}
		out.Logs = append(out.Logs, model.ChainLog{
			Address: l.Address,
			Topics:  l.Topics,
			Data:    l.Data,
			Index:   uint64(l.Index),
		})
	}
	return out
}

func convertTraces(traces []rpcTrace) []model.ChainTrace {
	out := make([]model.ChainTrace, 0, len(traces))
	for _, t := range traces {
		out = append(out, model.ChainTrace{
			Type:         t.Type,
			Action:       t.Action,
			Result:       t.Result,
			Error:        t.Error,
			TraceAddress: t.TraceAddress,
			Subtraces:    t.Subtraces,
		})
	}
	return out
}
