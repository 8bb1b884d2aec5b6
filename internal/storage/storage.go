package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/misterclayt0n/rampa/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	// The .env file is optional, the config file or environment can also
	// provide the connection string.
	godotenv.Load()

	url := os.Getenv("RAMPA_DATABASE_URL")
	if url == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			url = cfg.DB.ConnectionString
		}
	}
	if os.Getenv("DEV_MODE") == "true" {
		url = "file:./local.db?cache=shared&mode=rwc"
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "RAMPA_DATABASE_URL not set and no connection string in config.toml")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := initializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            author TEXT,
            description TEXT,
            sport_type TEXT,
            tags TEXT,
            zwo TEXT NOT NULL,
            created_at TEXT NOT NULL
        );
    `)
	return err
}
