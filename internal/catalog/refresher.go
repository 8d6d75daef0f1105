package catalog

import (
	"context"
	"log"
	"time"

	"earn-recycle-engine/internal/events"
	"earn-recycle-engine/internal/scheduler"
)

// RunRefresher refreshes c every interval until ctx is done, publishing a
// catalog_refreshed event after each successful load.
func RunRefresher(ctx context.Context, c *Catalog, hub *events.Hub, interval time.Duration) {
	scheduler.Every(ctx, interval, "catalog", func(ctx context.Context) error {
		snap, err := c.Refresh(ctx)
		if err != nil {
			return err
		}
		log.Printf("[catalog] refreshed requests=%d tracking=%d centers=%d",
			len(snap.Requests), len(snap.Tracking), len(snap.Centers))
		if hub != nil {
			hub.Emit("", events.TypeCatalogRefreshed, c.Status())
		}
		return nil
	})
}
