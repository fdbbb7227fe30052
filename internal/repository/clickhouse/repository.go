// Package clickhouse serves archived Ethereum blocks, receipts and traces
// from ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Repository implements service.ChainDataProvider over the eth_* archive
// tables of one network.
type Repository struct {
	conn             Conn
	network          string
	transitionHeight uint64
	metrics          Metrics
}

func NewRepository(dsn, network string, transitionHeight uint64, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{
		conn:             conn,
		network:          network,
		transitionHeight: transitionHeight,
		metrics:          metrics,
	}, nil
}

// TransitionHeight returns the configured code-hash address transition height.
func (r *Repository) TransitionHeight() uint64 {
	return r.transitionHeight
}

// Ping checks the ClickHouse connection.
func (r *Repository) Ping(ctx context.Context) error {
	start := time.Now()
	err := r.conn.Ping(ctx)
	r.metrics.Observe("ping", r.network, err, start)
	if err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}
