package utils

import (
	"fmt"
	"popdiff/api/models"

	"github.com/cenkalti/backoff"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var SupportedDrivers = []string{"sqlite3", "duckdb"}

// CreateDbConnection opens and pings the configured database, retrying
// with exponential backoff. Callers own the returned handle and close it
// when their call is done.
func CreateDbConnection(cfg *models.Config) (*sqlx.DB, error) {
	if !StringInSlice(cfg.Database.Driver, SupportedDrivers) {
		return nil, fmt.Errorf("unsupported database driver %q (expected one of %v)", cfg.Database.Driver, SupportedDrivers)
	}

	var (
		db           *sqlx.DB
		retryBackoff = backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.Database.ConnectRetries)
	)

	connect := func() error {
		conn, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.Path)
		if err != nil {
			if cfg.Debug {
				fmt.Printf("Connecting to %s failed: %v\n", cfg.Database.Path, err)
			}
			return err
		}
		db = conn
		return nil
	}

	if err := backoff.Retry(connect, retryBackoff); err != nil {
		return nil, fmt.Errorf("connecting to %s database at %s: %w", cfg.Database.Driver, cfg.Database.Path, err)
	}

	return db, nil
}
