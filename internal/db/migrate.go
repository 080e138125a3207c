package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	first_name    VARCHAR(255) NOT NULL DEFAULT '',
	last_name     VARCHAR(255) NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_types (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(255) NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workouts (
	id              BIGSERIAL PRIMARY KEY,
	user_id         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date            DATE NOT NULL,
	start_time      TIMESTAMPTZ NOT NULL,
	end_time        TIMESTAMPTZ NOT NULL,
	calories_burned INT NOT NULL DEFAULT 0,
	workout_type_id BIGINT REFERENCES workout_types(id),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT workouts_end_after_start CHECK (end_time >= start_time)
);

CREATE INDEX IF NOT EXISTS workouts_user_date_idx ON workouts (user_id, date);

CREATE TABLE IF NOT EXISTS exercise_sessions (
	id               BIGSERIAL PRIMARY KEY,
	workout_id       BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	position         INT NOT NULL,
	exercise_name    VARCHAR(255) NOT NULL,
	duration_seconds INT,
	distance_meters  DOUBLE PRECISION,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (workout_id, position)
);

CREATE TABLE IF NOT EXISTS exercise_sets (
	id                  BIGSERIAL PRIMARY KEY,
	exercise_session_id BIGINT NOT NULL REFERENCES exercise_sessions(id) ON DELETE CASCADE,
	position            INT NOT NULL,
	weight              DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
	reps                INT NOT NULL CHECK (reps > 0),
	UNIQUE (exercise_session_id, position)
);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
