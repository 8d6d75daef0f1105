package httpapi

import (
	"database/sql"
	"sync/atomic"
	"time"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/config"
	"earn-recycle-engine/internal/events"
	"earn-recycle-engine/internal/ratelimit"
)

type Deps struct {
	DB *sql.DB

	Hub     *events.Hub
	Catalog *catalog.Catalog
	Limiter *ratelimit.KeyLimiter

	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Now is injectable so "N hours ago" is testable; nil means time.Now.
	Now func() time.Time
}

func currentConfig(v *atomic.Value) config.Config {
	if v == nil {
		return config.Default()
	}
	cfg, ok := v.Load().(config.Config)
	if !ok {
		return config.Default()
	}
	return cfg
}
