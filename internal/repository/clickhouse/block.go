package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

const (
	blockHeaderQuery = `
SELECT
	hash,
	parent_hash,
	uncles_hash,
	author,
	state_root,
	transactions_root,
	receipts_root,
	logs_bloom,
	gas_used,
	gas_limit,
	timestamp,
	difficulty,
	extra_data,
	seal_fields,
	uncles,
	size
FROM eth_blocks FINAL
WHERE network = ? AND number = ?
LIMIT 1`

	blockTransactionsQuery = `
SELECT
	hash,
	block_hash,
	transaction_index,
	nonce,
	from_address,
	to_address,
	value,
	gas_price,
	gas,
	input,
	raw,
	chain_id,
	v,
	r,
	s
FROM eth_transactions FINAL
WHERE network = ? AND block_number = ?
ORDER BY transaction_index ASC`
)

// Block returns the archived block with its transactions, or nil when the
// archive does not hold it.
func (r *Repository) Block(ctx context.Context, id model.BlockIdentifier) (block *model.ChainBlock, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block", r.network, err, start)
	}()

	height, ok, err := r.blockHeight(ctx, id)
	if err != nil || !ok {
		return nil, err
	}

	block, err = r.blockHeader(ctx, height)
	if err != nil || block == nil {
		return nil, err
	}

	block.Transactions, err = r.blockTransactions(ctx, height)
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (r *Repository) blockHeader(ctx context.Context, height uint64) (block *model.ChainBlock, err error) {
	rows, err := r.conn.Query(ctx, blockHeaderQuery, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query block %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate block %d: %w", height, err)
		}
		return nil, nil
	}

	var (
		hash, parentHash, unclesHash, author      string
		stateRoot, transactionsRoot, receiptsRoot string
		logsBloom, extraData                      string
		gasUsed, gasLimit, timestamp, size        uint64
		difficulty                                = new(big.Int)
		sealFields, uncles                        []string
	)
	if err = rows.Scan(
		&hash,
		&parentHash,
		&unclesHash,
		&author,
		&stateRoot,
		&transactionsRoot,
		&receiptsRoot,
		&logsBloom,
		&gasUsed,
		&gasLimit,
		&timestamp,
		difficulty,
		&extraData,
		&sealFields,
		&uncles,
		&size,
	); err != nil {
		return nil, fmt.Errorf("scan block %d: %w", height, err)
	}

	var d hexDecoder
	blockHash := d.hash("hash", hash)
	number := height
	block = &model.ChainBlock{
		Hash:             &blockHash,
		Number:           &number,
		ParentHash:       d.hash("parent_hash", parentHash),
		UncleHash:        d.hash("uncles_hash", unclesHash),
		Author:           d.address("author", author),
		StateRoot:        d.hash("state_root", stateRoot),
		TransactionsRoot: d.hash("transactions_root", transactionsRoot),
		ReceiptsRoot:     d.hash("receipts_root", receiptsRoot),
		LogsBloom:        d.bloom("logs_bloom", logsBloom),
		GasUsed:          gasUsed,
		GasLimit:         gasLimit,
		Timestamp:        timestamp,
		Difficulty:       difficulty,
		ExtraData:        d.bytes("extra_data", extraData),
		SealFields:       make([][]byte, 0, len(sealFields)),
		Uncles:           d.hashes("uncles", uncles),
		Size:             &size,
	}
	for _, field := range sealFields {
		block.SealFields = append(block.SealFields, d.bytes("seal_fields", field))
	}
	if d.err != nil {
		return nil, fmt.Errorf("block %d: %w", height, d.err)
	}
	return block, nil
}

func (r *Repository) blockTransactions(ctx context.Context, height uint64) (txs []model.ChainTransaction, err error) {
	rows, err := r.conn.Query(ctx, blockTransactionsQuery, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query transactions of block %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	txs = []model.ChainTransaction{}
	for rows.Next() {
		var (
			hash, blockHash, from, input, raw string
			to                                *string
			index, nonce, gas                 uint64
			chainID                           *uint64
			value, gasPrice                   = new(big.Int), new(big.Int)
			v, rr, s                          = new(big.Int), new(big.Int), new(big.Int)
		)
		if err = rows.Scan(
			&hash,
			&blockHash,
			&index,
			&nonce,
			&from,
			&to,
			value,
			gasPrice,
			&gas,
			&input,
			&raw,
			&chainID,
			v,
			rr,
			s,
		); err != nil {
			return nil, fmt.Errorf("scan transaction of block %d: %w", height, err)
		}

		var d hexDecoder
		number := height
		bh := d.hash("block_hash", blockHash)
		tx := model.ChainTransaction{
			Hash:             d.hash("hash", hash),
			Nonce:            nonce,
			BlockHash:        &bh,
			BlockNumber:      &number,
			TransactionIndex: &index,
			From:             d.address("from_address", from),
			To:               d.optionalAddress("to_address", to),
			Value:            value,
			GasPrice:         gasPrice,
			Gas:              gas,
			Input:            d.bytes("input", input),
			Raw:              d.bytes("raw", raw),
			V:                v,
			R:                rr,
			S:                s,
		}
		if chainID != nil {
			tx.ChainID = new(big.Int).SetUint64(*chainID)
		}
		if d.err != nil {
			return nil, fmt.Errorf("transaction %d of block %d: %w", index, height, d.err)
		}
		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions of block %d: %w", height, err)
	}
	return txs, nil
}
