package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Summary aggregates the user's workouts dated on or after from.
func (r *Repo) Summary(ctx context.Context, userID uuid.UUID, from pkg.Date) (_ StatsSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("from", from.String()),
	)

	var summary StatsSummary
	err = r.db.QueryRow(ctx, `
		WITH windowed AS (
			SELECT id, start_time, end_time
			FROM workouts
			WHERE user_id = $1 AND date >= $2
		), sessions AS (
			SELECT s.id
			FROM exercise_sessions s
			JOIN windowed w ON w.id = s.workout_id
		)
		SELECT
			(SELECT count(*) FROM windowed),
			(SELECT count(*) FROM sessions),
			(SELECT count(*) FROM exercise_sets es JOIN sessions s ON s.id = es.exercise_session_id),
			(SELECT COALESCE(SUM(es.weight * es.reps), 0)::float8
				FROM exercise_sets es JOIN sessions s ON s.id = es.exercise_session_id),
			(SELECT COALESCE(AVG(EXTRACT(EPOCH FROM end_time - start_time)), 0)::float8 FROM windowed)
	`, userID, from.Time()).Scan(
		&summary.TotalWorkouts,
		&summary.TotalExercises,
		&summary.TotalSets,
		&summary.TotalWeight,
		&summary.AverageWorkoutDuration,
	)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("select stats summary: %w", err)
	}
	return summary, nil
}

// Frequency returns per-date workout counts on or after from, ascending by date.
func (r *Repo) Frequency(ctx context.Context, userID uuid.UUID, from pkg.Date) (_ []FrequencyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.frequency")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.frequency(ctx, `
		SELECT date, count(*)
		FROM workouts
		WHERE user_id = $1 AND date >= $2
		GROUP BY date
		ORDER BY date
	`, userID, from.Time())
}

// FrequencyBetween is Frequency limited to dates in [from, to].
func (r *Repo) FrequencyBetween(ctx context.Context, userID uuid.UUID, from, to pkg.Date) (_ []FrequencyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.frequency-between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.frequency(ctx, `
		SELECT date, count(*)
		FROM workouts
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY date
		ORDER BY date
	`, userID, from.Time(), to.Time())
}

func (r *Repo) frequency(ctx context.Context, sql string, args ...any) ([]FrequencyPoint, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select frequency: %w", err)
	}
	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (FrequencyPoint, error) {
		var (
			date  time.Time
			count int
		)
		if err := row.Scan(&date, &count); err != nil {
			return FrequencyPoint{}, err
		}
		return FrequencyPoint{Date: pkg.DateOf(date), Count: count}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan frequency: %w", err)
	}
	return points, nil
}
