package main

import (
	"log/slog"
	"os"
	"strconv"

	"vet-scheduler/internal/infra/db"
	"vet-scheduler/internal/pkg/config"
)

// usage: migrate [up|down|force N|version]
func main() {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		fail("failed to load config", err)
	}

	mg, err := db.NewMigrator(cfg.BuildDSN())
	if err != nil {
		fail("failed to open migrator", err)
	}
	defer func() { _ = mg.Close() }()

	cmd := "up"
	if len(os.Args) >= 2 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down()
	case "force":
		if len(os.Args) < 3 {
			fail("force needs a version", nil)
		}
		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			fail("invalid version", convErr)
		}
		err = mg.Force(version)
	case "version":
	default:
		fail("unknown command "+strconv.Quote(cmd), nil)
	}
	if err != nil {
		_ = mg.Close()
		fail("migration failed", err)
	}

	version, dirty, err := mg.Version()
	if err != nil {
		fail("failed to read version", err)
	}
	slog.Info("migrations complete", "command", cmd, "version", version, "dirty", dirty)
}

func fail(msg string, err error) {
	if err != nil {
		slog.Error(msg, "error", err)
	} else {
		slog.Error(msg)
	}
	os.Exit(1)
}
