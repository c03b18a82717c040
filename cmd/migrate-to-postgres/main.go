// migrate-to-postgres copies the generation history from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/history.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user dungeonforge \
//	    -pg-password dungeonforge \
//	    -pg-database dungeonforge
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/lawnchairsociety/dungeonforge/internal/database"
)

func main() {
	sqlitePath := flag.String("sqlite", "data/history.db", "Path to SQLite database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "dungeonforge", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "dungeonforge", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "dungeonforge", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL History Migration")
	log.Println("======================================")

	log.Printf("Opening SQLite database: %s", *sqlitePath)
	src, err := database.Open(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}
	defer src.Close()

	pg := database.DefaultPostgresConfig()
	pg.Host = *pgHost
	pg.Port = *pgPort
	pg.User = *pgUser
	pg.Password = *pgPassword
	pg.Database = *pgDatabase
	pg.SSLMode = *pgSSLMode

	log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", pg.User, pg.Host, pg.Port, pg.Database)
	dst, err := database.OpenWithConfig(database.Config{Driver: "postgres", Postgres: pg})
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	copied, skipped, err := migrateRuns(src, dst, *dryRun)
	if err != nil {
		log.Fatalf("Failed to migrate generation runs: %v", err)
	}

	log.Println("======================================")
	log.Printf("Migration complete! Runs copied: %d, already present: %d", copied, skipped)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}

// migrateRuns copies every run from src to dst, oldest first, keeping the
// original timestamps. Runs dst already holds are counted as skipped.
func migrateRuns(src, dst *database.Database, dryRun bool) (copied, skipped int, err error) {
	runs, err := src.ListRuns(0)
	if err != nil {
		return 0, 0, err
	}

	for i := len(runs) - 1; i >= 0; i-- {
		run := *runs[i]
		run.ID = 0
		if dryRun {
			copied++
			continue
		}
		if err := dst.SaveRun(&run); err != nil {
			if errors.Is(err, database.ErrRunExists) {
				skipped++
				continue
			}
			return copied, skipped, err
		}
		copied++
	}
	return copied, skipped, nil
}
