package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	big27    = big.NewInt(27)
	big28    = big.NewInt(28)
	big35    = big.NewInt(35)
	invalidV = big.NewInt(4)

	codeHashPrefix = bytes.Repeat([]byte{0xff}, common.AddressLength)
)

// TransactionProjector converts chain transactions into their wire form.
// Contract creations mined at or after the transition height derive the
// created address from the init code hash instead of sender and nonce.
type TransactionProjector struct {
	transitionHeight uint64
}

// NewTransactionProjector builds a projector bound to a transition height.
func NewTransactionProjector(transitionHeight uint64) *TransactionProjector {
	return &TransactionProjector{transitionHeight: transitionHeight}
}

// TransitionHeight returns the height the projector was built with.
func (p *TransactionProjector) TransitionHeight() uint64 {
	return p.transitionHeight
}

// Project combines a transaction with its receipt and traces. The receipt must
// belong to tx; anything else is reported as ErrDataConsistency.
func (p *TransactionProjector) Project(
	tx model.ChainTransaction,
	receipt *model.ChainReceipt,
	traces []model.ChainTrace,
) (model.TransactionWithReceipt, error) {
	if receipt == nil {
		return model.TransactionWithReceipt{}, fmt.Errorf("transaction %s: %w", tx.Hash, ErrMissingReceipt)
	}
	if receipt.TransactionHash != tx.Hash {
		return model.TransactionWithReceipt{}, fmt.Errorf("transaction %s has receipt for %s: %w", tx.Hash, receipt.TransactionHash, ErrReceiptMismatch)
	}

	return model.TransactionWithReceipt{
		Transaction: p.transaction(tx),
		Receipt:     projectReceipt(receipt),
		Traces:      projectTraces(receipt, traces),
	}, nil
}

func (p *TransactionProjector) transaction(tx model.ChainTransaction) model.Transaction {
	out := model.Transaction{
		Hash:      tx.Hash,
		Nonce:     hexutil.Uint64(tx.Nonce),
		From:      tx.From,
		Value:     (*hexutil.Big)(tx.Value),
		GasPrice:  (*hexutil.Big)(tx.GasPrice),
		Gas:       hexutil.Uint64(tx.Gas),
		Input:     tx.Input,
		Creates:   p.creates(tx),
		Raw:       tx.Raw,
		ChainID:   (*hexutil.Big)(tx.ChainID),
		StandardV: (*hexutil.Big)(standardV(tx.V)),
		V:         (*hexutil.Big)(tx.V),
		R:         (*hexutil.Big)(tx.R),
		S:         (*hexutil.Big)(tx.S),
	}
	if tx.BlockHash != nil {
		hash := *tx.BlockHash
		out.BlockHash = &hash
	}
	if tx.BlockNumber != nil {
		number := hexutil.Uint64(*tx.BlockNumber)
		out.BlockNumber = &number
	}
	if tx.TransactionIndex != nil {
		index := hexutil.Uint64(*tx.TransactionIndex)
		out.TransactionIndex = &index
	}
	if tx.To != nil {
		to := *tx.To
		out.To = &to
	}
	return out
}

func (p *TransactionProjector) creates(tx model.ChainTransaction) *common.Address {
	if tx.To != nil {
		return nil
	}

	var addr common.Address
	if tx.BlockNumber != nil && *tx.BlockNumber >= p.transitionHeight {
		buf := make([]byte, 0, common.AddressLength+common.HashLength)
		buf = append(buf, codeHashPrefix...)
		buf = append(buf, crypto.Keccak256(tx.Input)...)
		addr = common.BytesToAddress(crypto.Keccak256(buf))
	} else {
		addr = crypto.CreateAddress(tx.From, tx.Nonce)
	}
	return &addr
}

// standardV normalizes a signature V value to the recovery id (0 or 1), or 4
// when V matches no known encoding.
func standardV(v *big.Int) *big.Int {
	switch {
	case v == nil:
		return nil
	case v.Sign() >= 0 && v.Cmp(bigTwo) < 0:
		return new(big.Int).Set(v)
	case v.Cmp(big27) == 0 || v.Cmp(big28) == 0:
		return new(big.Int).Sub(v, big27)
	case v.Cmp(big35) >= 0:
		return new(big.Int).Mod(new(big.Int).Sub(v, bigOne), bigTwo)
	default:
		return new(big.Int).Set(invalidV)
	}
}

func projectReceipt(r *model.ChainReceipt) model.Receipt {
	out := model.Receipt{
		TransactionHash:   r.TransactionHash,
		TransactionIndex:  hexutil.Uint64(r.TransactionIndex),
		BlockHash:         r.BlockHash,
		BlockNumber:       hexutil.Uint64(r.BlockNumber),
		CumulativeGasUsed: hexutil.Uint64(r.CumulativeGasUsed),
		GasUsed:           hexutil.Uint64(r.GasUsed),
		Logs:              make([]model.Log, 0, len(r.Logs)),
		LogsBloom:         r.LogsBloom,
	}
	if r.ContractAddress != nil {
		addr := *r.ContractAddress
		out.ContractAddress = &addr
	}
	if r.Root != nil {
		root := *r.Root
		out.Root = &root
	}
	if r.Status != nil {
		status := hexutil.Uint64(*r.Status)
		out.Status = &status
	}

	for i, l := range r.Logs {
		topics := make([]common.Hash, len(l.Topics))
		copy(topics, l.Topics)
		out.Logs = append(out.Logs, model.Log{
			Address:             l.Address,
			Topics:              topics,
			Data:                l.Data,
			BlockHash:           r.BlockHash,
			BlockNumber:         hexutil.Uint64(r.BlockNumber),
			TransactionHash:     r.TransactionHash,
			TransactionIndex:    hexutil.Uint64(r.TransactionIndex),
			LogIndex:            hexutil.Uint64(l.Index),
			TransactionLogIndex: hexutil.Uint64(i),
			Type:                model.LogTypeMined,
		})
	}
	return out
}

func projectTraces(r *model.ChainReceipt, traces []model.ChainTrace) []model.LocalizedTrace {
	out := make([]model.LocalizedTrace, 0, len(traces))
	for _, t := range traces {
		address := make([]uint64, len(t.TraceAddress))
		copy(address, t.TraceAddress)
		out = append(out, model.LocalizedTrace{
			Action:              rawOrNull(t.Action),
			Result:              rawOrNull(t.Result),
			Error:               t.Error,
			TraceAddress:        address,
			Subtraces:           t.Subtraces,
			TransactionPosition: hexutil.Uint64(r.TransactionIndex),
			TransactionHash:     r.TransactionHash,
			BlockNumber:         hexutil.Uint64(r.BlockNumber),
			BlockHash:           r.BlockHash,
			Type:                t.Type,
		})
	}
	return out
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
