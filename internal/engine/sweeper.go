package engine

import (
	"context"
	"time"
)

// StartSweeper periodically deletes sessions idle for longer than ttl.
// A zero ttl disables sweeping. Returns immediately; the sweep loop runs
// until ctx is cancelled.
func (e *Engine) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.sweep(ctx, ttl)
			}
		}
	}()
}

func (e *Engine) sweep(ctx context.Context, ttl time.Duration) {
	sessions, err := e.store.List(ctx)
	if err != nil {
		e.logger.Error("session sweep failed", "error", err)
		return
	}

	cutoff := e.now().Add(-ttl)
	removed := 0
	for _, s := range sessions {
		if !s.UpdatedAt.Before(cutoff) {
			continue
		}
		lock := e.lockFor(s.ID)
		lock.Lock()
		// Re-check under the lock: a turn may have just touched it.
		cur, err := e.store.Get(ctx, s.ID)
		if err == nil && cur.UpdatedAt.Before(cutoff) {
			if err := e.store.Delete(ctx, s.ID); err != nil {
				e.logger.Error("failed to delete idle session", "session_id", s.ID, "error", err)
			} else {
				removed++
				e.mu.Lock()
				delete(e.locks, s.ID)
				e.mu.Unlock()
			}
		}
		lock.Unlock()
	}
	if removed > 0 {
		e.logger.Info("swept idle sessions", "removed", removed)
	}
}
