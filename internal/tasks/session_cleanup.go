package tasks

import (
	"context"
	"time"

	"github.com/osa911/clipdesk/internal/logging"
)

// ExpiredSessionDeleter removes sessions whose expiry has passed
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionCleanup handles periodic cleaning of expired sessions
type SessionCleanup struct {
	sessions ExpiredSessionDeleter
	interval time.Duration
}

// NewSessionCleanup creates a new session cleanup task
func NewSessionCleanup(sessions ExpiredSessionDeleter, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		sessions: sessions,
		interval: interval,
	}
}

// Start runs the cleanup in the background until ctx is cancelled
func (sc *SessionCleanup) Start(ctx context.Context) {
	go sc.Run(ctx)
}

// Run cleans once immediately and then on every tick until ctx is cancelled
func (sc *SessionCleanup) Run(ctx context.Context) {
	sc.cleanup(ctx)

	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sc.cleanup(ctx)
		}
	}
}

func (sc *SessionCleanup) cleanup(ctx context.Context) {
	logger := logging.GetGlobalLogger()

	deleted, err := sc.sessions.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("Session cleanup failed: %v", err)
		}
		return
	}
	if deleted > 0 {
		logger.Info("Deleted %d expired sessions", deleted)
	}
}
