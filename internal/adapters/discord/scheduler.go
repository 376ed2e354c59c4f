package discord

import (
	"context"
	"log"
	"time"
)

// RunScheduledTasks drops expired views every 10 minutes until ctx is done.
func (h *Handler) RunScheduledTasks(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := h.sessions.prune(); n > 0 {
				log.Printf("✅ %d vue(s) expirée(s) supprimée(s)", n)
			}
		}
	}
}
