package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/roster/roster/api/frontends/client/app"
	"github.com/ardanlabs/roster/roster/api/frontends/client/storage/dbfile"
	"github.com/ardanlabs/roster/roster/api/frontends/client/storage/sql"
	"github.com/ardanlabs/roster/roster/api/frontends/client/ui/tui"
	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"github.com/ardanlabs/roster/roster/foundation/logger"
	"github.com/google/uuid"
)

var build = "develop"

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Configuration

	cfg := struct {
		conf.Version
		Data struct {
			Source string `conf:"default:embedded,help:embedded|file|sqlite"`
			File   string `conf:"default:roster/zarf/data/users.json"`
			DBPath string `conf:"default:roster/zarf"`
		}
		Log struct {
			File  string `conf:"default:roster/zarf/logs/client.log"`
			Level string `conf:"default:info"`
		}
		Rand struct {
			Seed uint64 `conf:"default:0,help:0 picks a random seed"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "ROSTER",
		},
	}

	const prefix = "ROSTER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// -------------------------------------------------------------------------
	// Logging

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), os.ModePerm); err != nil {
		return fmt.Errorf("log dir: %w", err)
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("log file open: %w", err)
	}
	defer logFile.Close()

	traceIDFn := func(ctx context.Context) string {
		return logger.GetTraceID(ctx).String()
	}

	log := logger.New(logFile, logger.ParseLevel(cfg.Log.Level), "ROSTER", traceIDFn)
	defer log.Sync()

	ctx := logger.SetTraceID(context.Background(), uuid.New())

	log.Info(ctx, "starting client", "version", cfg.Build)
	defer log.Info(ctx, "shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Info(ctx, "startup", "config", out)

	log.BuildInfo(ctx)

	// -------------------------------------------------------------------------
	// Record Source

	source, closeFn, err := newSource(cfg.Data.Source, cfg.Data.File, cfg.Data.DBPath)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer closeFn()

	// -------------------------------------------------------------------------
	// Store, UI and App

	seed := cfg.Rand.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	log.Info(ctx, "startup", "status", "seeding random source", "seed", seed)

	store := roster.NewStore(log, rnd)

	ui := tui.New()

	a := app.New(log, store, source, ui)
	ui.SetApp(a)

	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if err := a.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

func newSource(kind string, fileName string, dbPath string) (app.Source, func() error, error) {
	nop := func() error { return nil }

	switch kind {
	case "embedded":
		return dbfile.NewEmbedded(), nop, nil

	case "file":
		db, err := dbfile.NewDB(fileName)
		if err != nil {
			return nil, nil, fmt.Errorf("dbfile: %w", err)
		}
		return db, nop, nil

	case "sqlite":
		db, err := sql.NewDB(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("sql: %w", err)
		}
		return db, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown source %q", kind)
}
