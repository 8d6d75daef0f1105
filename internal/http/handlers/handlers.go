// Package handlers renders the server-side HTML views.
package handlers

import (
	"sync/atomic"
	"time"

	"earn-recycle-engine/internal/catalog"
)

type Handlers struct {
	Catalog *catalog.Catalog
	CfgVal  *atomic.Value // stores config.Config
	Now     func() time.Time
}

func (h Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
