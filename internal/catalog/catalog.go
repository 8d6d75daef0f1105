// Package catalog holds the read-only record collections the views are
// computed from. Readers always see a complete, immutable snapshot.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"earn-recycle-engine/internal/domain"
	"earn-recycle-engine/internal/store"
)

var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot must not be modified once published.
type Snapshot struct {
	Requests   []domain.Request
	Tracking   []domain.TrackingItem
	Centers    []domain.Center
	Categories []domain.Category
	Profile    *domain.Profile // nil until a profile is seeded
	LoadedAt   time.Time
}

type Status struct {
	LastRunAt  string `json:"last_run_at"`
	LastOkAt   string `json:"last_ok_at"`
	LastError  string `json:"last_error"`
	Running    bool   `json:"running"`
	Requests   int    `json:"requests"`
	Tracking   int    `json:"tracking"`
	Centers    int    `json:"centers"`
	Categories int    `json:"categories"`
}

type Catalog struct {
	db *sql.DB

	snap   atomic.Pointer[Snapshot]
	status atomic.Value // Status

	refreshMu sync.Mutex
}

func New(db *sql.DB) *Catalog {
	c := &Catalog{db: db}
	c.status.Store(Status{})
	return c
}

// Snapshot returns the current snapshot, or ErrNotLoaded before the first
// successful Refresh.
func (c *Catalog) Snapshot() (*Snapshot, error) {
	s := c.snap.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

func (c *Catalog) Status() Status {
	return c.status.Load().(Status)
}

// Refresh reloads every collection and the profile from the store and publishes them as one
// snapshot. On error the previous snapshot stays in place. Concurrent calls
// are serialized.
func (c *Catalog) Refresh(ctx context.Context) (*Snapshot, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	st := c.Status()
	st.Running = true
	st.LastRunAt = time.Now().Format(time.RFC3339)
	c.status.Store(st)

	next, err := c.load(ctx)

	st.Running = false
	if err != nil {
		st.LastError = err.Error()
		c.status.Store(st)
		return nil, err
	}
	st.LastError = ""
	st.LastOkAt = time.Now().Format(time.RFC3339)
	st.Requests = len(next.Requests)
	st.Tracking = len(next.Tracking)
	st.Centers = len(next.Centers)
	st.Categories = len(next.Categories)

	c.snap.Store(next)
	c.status.Store(st)
	return next, nil
}

func (c *Catalog) load(ctx context.Context) (*Snapshot, error) {
	var next Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		next.Requests, err = store.ListRequests(gctx, c.db)
		return err
	})
	g.Go(func() (err error) {
		next.Tracking, err = store.ListTracking(gctx, c.db)
		return err
	})
	g.Go(func() (err error) {
		next.Centers, err = store.ListCenters(gctx, c.db)
		return err
	})
	g.Go(func() (err error) {
		next.Categories, err = store.ListCategories(gctx, c.db)
		return err
	})

	g.Go(func() (err error) {
		next.Profile, err = store.GetProfile(gctx, c.db)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	next.LoadedAt = time.Now()
	return &next, nil
}
