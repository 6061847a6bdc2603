package service

import (
	"context"
	"time"

	"vendor-marketplace-be/internal/pkg/logger"
)

// ExpiryWorker periodically expires active subscriptions whose end date has passed.
type ExpiryWorker struct {
	subscriptions ISubscriptionService
	interval      time.Duration
	logger        logger.ILogger
}

func NewExpiryWorker(subscriptions ISubscriptionService, interval time.Duration, log logger.ILogger) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpiryWorker{
		subscriptions: subscriptions,
		interval:      interval,
		logger:        log,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("EXPIRY", "Expiry worker stopped", nil)
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	if _, err := w.subscriptions.ExpireOverdue(ctx); err != nil {
		w.logger.Error("EXPIRY", "Expiry sweep failed", map[string]interface{}{"error": err.Error()})
	}
}
