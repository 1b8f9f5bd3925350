// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const probeTimeout = 5 * time.Second

// Readiness records the outcome of the most recent database probe.
// It starts out not ready.
type Readiness struct {
	mu        sync.RWMutex
	ready     bool
	lastErr   error
	checkedAt time.Time
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

func (r *Readiness) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

// Status returns the last probe result. checkedAt is zero before the first probe.
func (r *Readiness) Status() (ready bool, lastErr error, checkedAt time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready, r.lastErr, r.checkedAt
}

func (r *Readiness) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ready = err == nil
	r.lastErr = err
	r.checkedAt = time.Now()
}

// Probe runs the diagnostic query once, records the outcome and returns the
// database server time.
func (r *Readiness) Probe(ctx context.Context, conn *Conn) (string, error) {
	now, err := probe(ctx, conn)
	r.record(err)
	return now, err
}

func probe(ctx context.Context, conn *Conn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return conn.Now(ctx)
}

// InitFunc prepares a freshly reachable database, e.g. CreateSchema.
type InitFunc func(ctx context.Context, conn *Conn) error

// Monitor probes the database right away and then every interval until ctx is
// done. The first result is logged, later only transitions between up and down.
//
// A non-nil initFn runs after the first successful probe and is retried on each
// later one until it succeeds. The database counts as down until then.
func (r *Readiness) Monitor(ctx context.Context, conn *Conn, interval time.Duration, logger *slog.Logger, initFn InitFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	driver := slog.String("driver", string(conn.Driver()))
	pending := initFn != nil
	first := true

	for {
		wasReady := r.Ready()

		now, err := probe(ctx, conn)
		if err == nil && pending {
			if err = initFn(ctx, conn); err != nil {
				err = fmt.Errorf("initialize database: %w", err)
			} else {
				pending = false
				logger.Info("database initialized", driver)
			}
		}
		if ctx.Err() == nil {
			r.record(err)
			switch {
			case first && err == nil:
				logger.Info("database connected", driver, slog.String("now", now))
			case first:
				logger.Error("database connection failed", driver, slog.String("error", err.Error()))
			case err == nil && !wasReady:
				logger.Info("database is back up", driver)
			case err != nil && wasReady:
				logger.Warn("database is down", driver, slog.String("error", err.Error()))
			}
		}
		first = false

		select {
		case <-ctx.Done():
			logger.Info("database monitor stopped")
			return
		case <-ticker.C:
		}
	}
}
