package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/provider/node"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/transport"
)

const (
	sourceNode       = "node"
	sourceClickhouse = "clickhouse"
)

var config struct {
	Addr                 string        `long:"addr" env:"BULK_RPC_ADDR" description:"HTTP JSON-RPC listen address" default:":8545"`
	GRPCAddr             string        `long:"grpc-addr" env:"BULK_RPC_GRPC_ADDR" description:"gRPC health listen address" default:":8546"`
	CORSOrigins          []string      `long:"cors-origin" env:"BULK_RPC_CORS_ORIGINS" env-delim:"," description:"allowed CORS origins, any when empty"`
	Source               string        `long:"source" env:"BULK_RPC_SOURCE" description:"block data source" choice:"node" choice:"clickhouse" default:"node"`
	NodeURL              string        `long:"node-url" env:"BULK_RPC_NODE_URL" description:"upstream node JSON-RPC url" default:"http://localhost:8545"`
	NodeRPS              int           `long:"node-rps" env:"BULK_RPC_NODE_RPS" description:"upstream node requests per second, 0 disables the limit" default:"100"`
	ReceiptBatchSize     int           `long:"receipt-batch-size" env:"BULK_RPC_RECEIPT_BATCH_SIZE" description:"coalesce upstream receipt lookups into batches of this size, 1 disables batching" default:"1"`
	ReceiptBatchInterval time.Duration `long:"receipt-batch-interval" env:"BULK_RPC_RECEIPT_BATCH_INTERVAL" description:"max wait before a partial receipt batch is sent" default:"5ms"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"BULK_RPC_CLICKHOUSE_DSN" description:"clickhouse dsn"`
	Network              string        `long:"network" env:"BULK_RPC_NETWORK" description:"network name" default:"mainnet"`
	TransitionHeight     uint64        `long:"transition-height" env:"BULK_RPC_TRANSITION_HEIGHT" description:"height from which created contract addresses use the code hash scheme"`
	NoTraces             bool          `long:"no-traces" env:"BULK_RPC_NO_TRACES" description:"skip execution trace lookups"`
	Workers              int           `long:"workers" env:"BULK_RPC_WORKERS" description:"concurrent per-transaction lookups per request" default:"8"`
	ReadyTimeout         time.Duration `long:"ready-timeout" env:"BULK_RPC_READY_TIMEOUT" description:"how long to wait for the data source at startup" default:"1m"`
}

type chainSource interface {
	service.ChainDataProvider
	transport.ReadinessProbe
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	config.TransitionHeight = math.MaxUint64
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	source, closeSource, err := newChainSource(ctx, logger)
	if err != nil {
		logger.Fatal("Init chain data source", zap.Error(err))
	}
	defer closeSource()

	readyCtx, cancelReady := context.WithTimeout(ctx, config.ReadyTimeout)
	err = clock.Poll(readyCtx, time.Second, source.Ping, func(attempt int, err error) {
		logger.Warn("Chain data source not ready", zap.Int("attempt", attempt), zap.Error(err))
	})
	cancelReady()
	if err != nil {
		logger.Fatal("Chain data source unavailable", zap.String("source", config.Source), zap.Error(err))
	}

	assembler := service.NewBlockAssembler(source, service.AssemblerConfig{
		Workers:       config.Workers,
		IncludeTraces: !config.NoTraces,
	}, metrics.NewBlockAssembler(config.Network), logger)
	api := transport.NewBulkAPI(assembler, metrics.NewBulkHandler(), logger)

	rpcServer, err := transport.NewRPCServer(api)
	if err != nil {
		logger.Fatal("Register bulk API", zap.Error(err))
	}
	defer rpcServer.Stop()

	startGRPCServer(ctx, logger, source)
	serveHTTP(ctx, logger, rpcServer)
}

func newChainSource(ctx context.Context, logger *zap.Logger) (chainSource, func(), error) {
	switch config.Source {
	case sourceClickhouse:
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, config.Network, config.TransitionHeight, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Error("Close clickhouse connection", zap.Error(err))
			}
		}, nil

	case sourceNode:
		client, err := rpc.DialContext(ctx, config.NodeURL)
		if err != nil {
			return nil, nil, fmt.Errorf("dial node %s: %w", config.NodeURL, err)
		}
		observed := node.NewObservedClient(client, config.NodeRPS, metrics.NewRPCClient(config.Network))
		provider := node.NewProvider(ctx, observed, node.Config{
			TransitionHeight:     config.TransitionHeight,
			ReceiptBatchSize:     config.ReceiptBatchSize,
			ReceiptBatchInterval: config.ReceiptBatchInterval,
		}, logger)
		return provider, func() {
			provider.Close()
			client.Close()
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown source %q", config.Source)
	}
}

func startGRPCServer(ctx context.Context, logger *zap.Logger, probe transport.ReadinessProbe) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthpb.RegisterHealthServer(grpcServer, transport.NewHealthHandler(probe, logger))
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
}

func serveHTTP(ctx context.Context, logger *zap.Logger, rpcServer *rpc.Server) {
	s := &http.Server{
		Addr:              config.Addr,
		Handler:           transport.NewHTTPHandler(rpcServer, config.CORSOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.Addr),
		zap.String("source", config.Source),
		zap.String("network", config.Network),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
