// Package cache opens and maintains the optional web cache store.
package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	websqlite "github.com/louisbranch/crowdfund/internal/services/web/storage/sqlite"
)

// OpenStore opens the web cache store when a storage path is provided.
// An empty path disables caching and returns a nil store.
func OpenStore(ctx context.Context, path string) (*websqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create web cache dir: %w", err)
		}
	}
	store, err := websqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open web cache sqlite store: %w", err)
	}
	return store, nil
}

// Purger deletes expired cache rows.
type Purger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// RunPurger removes expired entries every interval until ctx is done.
func RunPurger(ctx context.Context, store Purger, interval time.Duration) {
	if store == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := store.PurgeExpired(ctx, now)
			if err != nil {
				log.Printf("web cache purge failed err=%v", err)
				continue
			}
			if removed > 0 {
				log.Printf("web cache purged expired entries count=%d", removed)
			}
		}
	}
}
