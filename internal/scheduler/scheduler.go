// Copyright (c) 2025-2026 Terra Mia
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the periodic maintenance jobs: expired cache
// entry sweeps and event log pruning.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/terramia/faq-go/internal/cache"
	"github.com/terramia/faq-go/internal/store"
)

// DefaultEventRetention is how long event log entries are kept.
const DefaultEventRetention = 90 * 24 * time.Hour

// Scheduler handles the periodic maintenance jobs.
type Scheduler struct {
	db        *sql.DB
	cache     cache.Cache
	cron      *cron.Cron
	logger    *slog.Logger
	retention time.Duration
}

// New creates a scheduler. The cache may be nil when caching is disabled.
func New(db *sql.DB, c cache.Cache, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:        db,
		cache:     c,
		cron:      cron.New(),
		logger:    logger,
		retention: DefaultEventRetention,
	}
}

// Start registers the maintenance jobs and begins running them.
func (s *Scheduler) Start() error {
	// Sweep expired cache entries every ten minutes. Redis expires keys
	// natively, so only sweepable backends do any work here.
	if _, err := s.cron.AddFunc("*/10 * * * *", s.sweepCache); err != nil {
		return err
	}

	// Prune old event log entries nightly.
	if _, err := s.cron.AddFunc("30 3 * * *", s.pruneEvents); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) sweepCache() {
	sweeper, ok := s.cache.(cache.Sweeper)
	if !ok {
		return
	}
	sweeper.Sweep()
	s.logger.Debug("cache sweep complete")
}

func (s *Scheduler) pruneEvents() {
	cutoff := time.Now().Add(-s.retention)

	n, err := store.New(s.db).DeleteEventsBefore(context.Background(), cutoff)
	if err != nil {
		s.logger.Error("event log pruning failed", "error", err, "category", "system")
		return
	}
	if n > 0 {
		s.logger.Info("event log pruned", "removed", n, "cutoff", cutoff.Format(time.RFC3339))
	}
}
