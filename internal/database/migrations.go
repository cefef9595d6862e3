package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// RunMigrations applies the schema in order. Every statement is written to
// be re-runnable so startup stays idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	migrations := []string{
		createPersonsTable,
		createAddressesTable,
		createPhonesTable,
	}

	for i, migration := range migrations {
		log.Debug().Int("step", i+1).Int("total", len(migrations)).Msg("running migration")
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Msg("all migrations completed")
	return nil
}

const createPersonsTable = `
CREATE TABLE IF NOT EXISTS persons (
  id BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  age INTEGER NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_persons_name ON persons(name);
`

const createAddressesTable = `
CREATE TABLE IF NOT EXISTS addresses (
  id BIGSERIAL PRIMARY KEY,
  street VARCHAR(100) NOT NULL,
  city VARCHAR(50) NOT NULL,
  person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_addresses_person_id ON addresses(person_id);
CREATE INDEX IF NOT EXISTS idx_addresses_city ON addresses(city);
`

const createPhonesTable = `
CREATE TABLE IF NOT EXISTS phones (
  id BIGSERIAL PRIMARY KEY,
  number VARCHAR(20) NOT NULL,
  type VARCHAR(10) NOT NULL,
  person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_phones_person_id ON phones(person_id);
`
