package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainDataProvider is the read-only view of the chain the assembler needs.
	// A nil result with a nil error means the item does not exist.
	ChainDataProvider interface {
		Block(ctx context.Context, id model.BlockIdentifier) (*model.ChainBlock, error)
		TotalDifficulty(ctx context.Context, id model.BlockIdentifier) (*big.Int, error)
		TransitionHeight() uint64
		Receipt(ctx context.Context, txHash common.Hash) (*model.ChainReceipt, error)
		Traces(ctx context.Context, txHash common.Hash) ([]model.ChainTrace, error)
	}
	AssemblerMetrics interface {
		ObserveAssemble(err error, found bool, transactions int, started time.Time)
		ObserveTotalDifficultyMissing()
	}
)
