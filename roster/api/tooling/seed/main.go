// This program loads a JSON or YAML data file into the SQLite record source
// used by the client when started with ROSTER_DATA_SOURCE=sqlite.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/roster/roster/api/frontends/client/storage/dbfile"
	"github.com/ardanlabs/roster/roster/api/frontends/client/storage/sql"
	"github.com/ardanlabs/roster/roster/app/sdk/roster"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := struct {
		Data struct {
			File   string `conf:"help:data file to load; the embedded dataset is used when empty"`
			DBPath string `conf:"default:roster/zarf"`
		}
		Clean bool `conf:"default:true,help:drop existing records first"`
	}{}

	help, err := conf.Parse("ROSTER", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	ctx := context.Background()

	// -------------------------------------------------------------------------
	// Read Records

	var records []roster.Record

	switch cfg.Data.File {
	case "":
		records, err = dbfile.NewEmbedded().Records(ctx)

	default:
		var src *dbfile.DB
		src, err = dbfile.NewDB(cfg.Data.File)
		if err == nil {
			records, err = src.Records(ctx)
		}
	}

	if err != nil {
		return fmt.Errorf("records: %w", err)
	}

	// -------------------------------------------------------------------------
	// Write Records

	db, err := sql.NewDB(cfg.Data.DBPath)
	if err != nil {
		return fmt.Errorf("sql: %w", err)
	}
	defer db.Close()

	if cfg.Clean {
		if err := db.CleanTables(); err != nil {
			return fmt.Errorf("clean tables: %w", err)
		}
	}

	if err := db.InsertRecords(ctx, records); err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	fmt.Printf("loaded %d records into %s\n", len(records), cfg.Data.DBPath)

	return nil
}
