package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS snp (
		snp_id     TEXT,
		chromosome TEXT,
		position   INTEGER NOT NULL,
		gene_name  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS allele_frequency (
		position        INTEGER NOT NULL,
		population_code TEXT NOT NULL,
		REF             DOUBLE,
		ALT             DOUBLE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snp_gene_name ON snp (gene_name)`,
	`CREATE INDEX IF NOT EXISTS idx_allele_frequency_position ON allele_frequency (position, population_code)`,
}

// Migrate creates the snp and allele_frequency tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
