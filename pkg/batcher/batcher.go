// Package batcher coalesces concurrent requests into rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned for requests submitted to a stopped Batcher.
var ErrStopped = errors.New("batcher stopped")

// Result is the outcome of one item in a flushed batch.
type Result[R any] struct {
	Value R
	Err   error
}

// FlushFunc resolves a batch. It must return one Result per item, in order;
// a non-nil error fails every item in the batch.
type FlushFunc[T, R any] func(ctx context.Context, items []T) ([]Result[R], error)

type pending[T, R any] struct {
	item T
	done chan Result[R]
}

// Batcher buffers requests and flushes them either by size or interval.
type Batcher[T, R any] struct {
	flush         FlushFunc[T, R]
	itemsCh       chan pending[T, R]
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	exited   chan struct{}
}

// New constructs a Batcher. rps bounds flushes per second; zero or less
// disables the limit.
func New[T, R any](logger *zap.Logger, flush FlushFunc[T, R], flushSize int, flushInterval time.Duration, rps int) *Batcher[T, R] {
	if flushSize <= 0 {
		flushSize = 1
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T, R]{
		logger:        logger,
		flush:         flush,
		itemsCh:       make(chan pending[T, R], flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
		exited:        make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T, R]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the loop. It is safe to call more
// than once.
func (b *Batcher[T, R]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Do queues item and waits for the batch containing it to be flushed.
func (b *Batcher[T, R]) Do(ctx context.Context, item T) (R, error) {
	var zero R

	select {
	case <-b.stop:
		return zero, ErrStopped
	default:
	}

	p := pending[T, R]{item: item, done: make(chan Result[R], 1)}
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-b.stop:
		return zero, ErrStopped
	case b.itemsCh <- p:
	}

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-p.done:
		return res.Value, res.Err
	case <-b.exited:
		select {
		case res := <-p.done:
			return res.Value, res.Err
		default:
			return zero, ErrStopped
		}
	}
}

func (b *Batcher[T, R]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.exited)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]pending[T, R], 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		items := make([]T, len(buf))
		for i, p := range buf {
			items[i] = p.item
		}

		b.rl.Take()
		results, err := b.flush(ctx, items)
		if err == nil && len(results) != len(items) {
			err = fmt.Errorf("batch of %d items resolved %d results", len(items), len(results))
		}
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			for _, p := range buf {
				p.done <- Result[R]{Err: err}
			}
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
			for i, p := range buf {
				p.done <- results[i]
			}
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			b.drain(&buf)
			flush()
			return

		case p := <-b.itemsCh:
			buf = append(buf, p)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// drain moves already queued requests into buf so Stop answers them.
func (b *Batcher[T, R]) drain(buf *[]pending[T, R]) {
	for {
		select {
		case p := <-b.itemsCh:
			*buf = append(*buf, p)
		default:
			return
		}
	}
}
