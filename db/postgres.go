package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func Connect(connStr string) error {
	if connStr == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS game_recap (
	id          BIGSERIAL PRIMARY KEY,
	game_pk     INTEGER     NOT NULL,
	team_id     INTEGER     NOT NULL,
	game_date   DATE        NOT NULL,
	summary     JSONB       NOT NULL,
	model_used  TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (game_pk, team_id)
);

CREATE INDEX IF NOT EXISTS game_recap_updated_at_idx ON game_recap (updated_at DESC);
`

// Migrate creates the recap tables when they do not exist yet.
func Migrate() error {
	_, err := DB.Exec(schema)
	return err
}
