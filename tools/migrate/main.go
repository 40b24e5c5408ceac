package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/orgball2608/insta-feed-ingestor/internal/migrations"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/pressly/goose/v3"
)

const usage = "Usage: migrate [up|down|redo|status|version|reset|create <name>]"

type command struct {
	run  func(ctx context.Context, db *sql.DB) error
	done string
}

var commands = map[string]command{
	"up": {
		run:  func(ctx context.Context, db *sql.DB) error { return goose.UpContext(ctx, db, migrations.Dir) },
		done: "Migrations applied successfully",
	},
	"down": {
		run:  func(ctx context.Context, db *sql.DB) error { return goose.DownContext(ctx, db, migrations.Dir) },
		done: "Migration rollback successful",
	},
	"redo": {
		run:  func(ctx context.Context, db *sql.DB) error { return goose.RedoContext(ctx, db, migrations.Dir) },
		done: "Latest migration re-applied",
	},
	"status": {
		run: func(ctx context.Context, db *sql.DB) error { return goose.StatusContext(ctx, db, migrations.Dir) },
	},
	"version": {
		run: func(ctx context.Context, db *sql.DB) error { return goose.VersionContext(ctx, db, migrations.Dir) },
	},
	"reset": {
		run:  func(ctx context.Context, db *sql.DB) error { return goose.ResetContext(ctx, db, migrations.Dir) },
		done: "All migrations have been rolled back",
	},
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	name := os.Args[1]
	if name == "create" {
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate create <name>")
		}
		if err := create(os.Args[2]); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}
		return
	}

	cmd, ok := commands[name]
	if !ok {
		log.Fatalf("Unknown command %q. %s", name, usage)
	}

	if err := execute(cmd); err != nil {
		log.Fatalf("migrate %s: %v", name, err)
	}
	if cmd.done != "" {
		fmt.Println(cmd.done)
	}
}

func execute(cmd command) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := migrations.Open(cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	return cmd.run(context.Background(), db)
}

// create scaffolds a Go migration next to the embedded ones.
func create(name string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	dir := filepath.Join(wd, "internal", "migrations")
	fmt.Printf("Creating migration in: %s\n", dir)
	return goose.Create(nil, dir, name, "go")
}
