package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/config"
	"earn-recycle-engine/internal/events"
	enginehttp "earn-recycle-engine/internal/http"
	"earn-recycle-engine/internal/http/handlers"
	"earn-recycle-engine/internal/httpapi"
	"earn-recycle-engine/internal/ratelimit"
	"earn-recycle-engine/internal/secrets"
	"earn-recycle-engine/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Engine data dir: use env if provided (the desktop shell passes one), else local folder.
	dataDir := os.Getenv("RECYCLE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	lock, err := store.LockDataDir(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}
	labelsPath := filepath.Join(dataDir, "labels.yml")

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.OverlayLabels(&cfg, labelsPath); err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, w := range vr.Warnings {
			log.Printf("[config] warning: %s", w)
		}
		if !vr.OK() {
			return cfg, fmt.Errorf("invalid config: %v", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "recycle.db")
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Catalog.SeedOnStart {
		n, err := store.SeedCatalog(ctx, db.Pool)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Printf("[seed] inserted requests=%d tracking=%d centers=%d categories=%d profile=%d",
			n.Requests, n.Tracking, n.Centers, n.Categories, n.Profile)
	}

	cat := catalog.New(db.Pool)
	if _, err := cat.Refresh(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	hub := events.NewHub()

	deps := httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Catalog:     cat,
		Limiter:     ratelimit.New(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	}
	mux := httpapi.NewMux(deps)
	enginehttp.Mount(mux, handlers.Handlers{Catalog: cat, CfgVal: &cfgVal})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Shutdown token: the desktop shell reads it from the OS keychain.
	token, err := randomToken(32)
	if err != nil {
		return err
	}
	account := secrets.ShutdownAccount(cfg)
	if err := secrets.SetShutdownToken(account, token); err != nil {
		log.Printf("[secrets] could not store shutdown token: %v", err)
	} else {
		defer func() { _ = secrets.DeleteShutdownToken(account) }()
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, cancel))

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return enginehttp.Serve(gctx, ln, httpapi.Handler(mux, deps))
	})
	if secs := cfg.Catalog.RefreshSeconds; secs > 0 {
		g.Go(func() error {
			catalog.RunRefresher(gctx, cat, hub, time.Duration(secs)*time.Second)
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("engine stopped")
	return nil
}
