package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type (
	// Conn is the subset of clickhouse.Conn used by the repository.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Ping(ctx context.Context) error
		Close() error
	}

	Rows interface {
		driver.Rows
	}

	Metrics interface {
		Observe(operation, network string, err error, started time.Time)
	}
)
