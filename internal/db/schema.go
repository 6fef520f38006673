package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// schemaStatements are idempotent; they run on every service start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS app_user
	(
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(256) NOT NULL,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS workout
	(
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER      NOT NULL REFERENCES app_user (id),
		workout    VARCHAR(200) NOT NULL,
		duration   INTEGER      NOT NULL,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS ix_workout_user_created_at ON workout (user_id, created_at);`,
	`CREATE TABLE IF NOT EXISTS strength_workout
	(
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER          NOT NULL REFERENCES app_user (id),
		exercise   VARCHAR(200)     NOT NULL,
		reps       INTEGER          NOT NULL,
		weight     DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ      NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS ix_strength_workout_user_created_at ON strength_workout (user_id, created_at);`,
	`CREATE TABLE IF NOT EXISTS cardio_workout
	(
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER          NOT NULL REFERENCES app_user (id),
		activity   VARCHAR(200)     NOT NULL,
		duration   INTEGER          NOT NULL,
		distance   DOUBLE PRECISION NOT NULL,
		calories   DOUBLE PRECISION,
		created_at TIMESTAMPTZ      NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS ix_cardio_workout_user_created_at ON cardio_workout (user_id, created_at);`,
}

// EnsureSchema creates the fitlog tables if they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	log.Debugf("db schema ensured [%d statements]", len(schemaStatements))
	return nil
}
