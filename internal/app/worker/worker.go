package worker

import (
	"context"

	"dockhand/internal/config"
)

// Pool bounds how many log streams the API serves at once
type Pool interface {
	Acquire(ctx context.Context) error
	Release()
}

// pool implements the Pool interface
type pool struct {
	sem chan struct{}
}

// NewWorkerPool creates a pool with server.streams slots
func NewWorkerPool(cfg *config.Config) Pool {
	return NewPool(cfg.Server.Streams)
}

// NewPool creates a pool with size slots
func NewPool(size int) Pool {
	return &pool{
		sem: make(chan struct{}, size),
	}
}

// Acquire takes a slot, blocking while all are busy, or returns the context error
func (w *pool) Acquire(ctx context.Context) error {
	select {
	case w.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a slot
func (w *pool) Release() {
	<-w.sem
}
