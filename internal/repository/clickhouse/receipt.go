package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/service"
)

const receiptQuery = `
SELECT
	transaction_index,
	block_hash,
	block_number,
	cumulative_gas_used,
	gas_used,
	contract_address,
	logs_bloom,
	root,
	status,
	log_addresses,
	log_topics,
	log_data,
	log_indexes
FROM eth_receipts FINAL
WHERE network = ? AND transaction_hash = ?
LIMIT 1`

// Receipt returns the archived receipt of txHash, or nil when none exists.
func (r *Repository) Receipt(ctx context.Context, txHash common.Hash) (receipt *model.ChainReceipt, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("receipt", r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, receiptQuery, r.network, txHash.Hex())
	if err != nil {
		return nil, fmt.Errorf("query receipt %s: %w", txHash, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate receipt %s: %w", txHash, err)
		}
		return nil, nil
	}

	var (
		index, blockNumber, cumulativeGasUsed, gasUsed uint64
		blockHash, logsBloom                           string
		contractAddress, root                          *string
		status                                         *uint64
		logAddresses, logData                          []string
		logTopics                                      [][]string
		logIndexes                                     []uint64
	)
	if err = rows.Scan(
		&index,
		&blockHash,
		&blockNumber,
		&cumulativeGasUsed,
		&gasUsed,
		&contractAddress,
		&logsBloom,
		&root,
		&status,
		&logAddresses,
		&logTopics,
		&logData,
		&logIndexes,
	); err != nil {
		return nil, fmt.Errorf("scan receipt %s: %w", txHash, err)
	}

	n := len(logAddresses)
	if len(logTopics) != n || len(logData) != n || len(logIndexes) != n {
		return nil, fmt.Errorf("receipt %s has misaligned log columns: %w", txHash, service.ErrDataConsistency)
	}

	var d hexDecoder
	receipt = &model.ChainReceipt{
		TransactionHash:   txHash,
		TransactionIndex:  index,
		BlockHash:         d.hash("block_hash", blockHash),
		BlockNumber:       blockNumber,
		CumulativeGasUsed: cumulativeGasUsed,
		GasUsed:           gasUsed,
		ContractAddress:   d.optionalAddress("contract_address", contractAddress),
		LogsBloom:         d.bloom("logs_bloom", logsBloom),
		Logs:              make([]model.ChainLog, 0, n),
		Status:            status,
	}
	if root != nil {
		h := d.hash("root", *root)
		receipt.Root = &h
	}
	for i := 0; i < n; i++ {
		receipt.Logs = append(receipt.Logs, model.ChainLog{
			Address: d.address("log_addresses", logAddresses[i]),
			Topics:  d.hashes("log_topics", logTopics[i]),
			Data:    d.bytes("log_data", logData[i]),
			Index:   logIndexes[i],
		})
	}
	if d.err != nil {
		return nil, fmt.Errorf("receipt %s: %w", txHash, d.err)
	}
	return receipt, nil
}
