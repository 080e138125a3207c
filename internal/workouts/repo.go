package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrUnknownUser        = errors.New("unknown user")
	ErrUnknownWorkoutType = errors.New("unknown workout type")
)

const (
	fkWorkoutUser = "workouts_user_id_fkey"
	fkWorkoutType = "workouts_workout_type_id_fkey"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the workout with all its sessions and sets in one transaction and
// returns the new workout ID. Nothing is kept if any insert fails.
func (r *Repo) Add(ctx context.Context, workout Workout) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", workout.UserID.String()),
		attribute.Int("sessions", len(workout.Sessions)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			if commitErr := tx.Commit(ctx); commitErr != nil {
				err = fmt.Errorf("commit tx: %w", mapStoreErr(commitErr))
			}
		}
	}()

	var workoutID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO workouts (user_id, date, start_time, end_time, calories_burned, workout_type_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		workout.UserID,
		workout.Date.Time(),
		workout.StartTime,
		workout.EndTime,
		workout.CaloriesBurned,
		workout.WorkoutTypeID,
	).Scan(&workoutID)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", mapStoreErr(err))
	}

	setRows := make([][]any, 0)
	for _, session := range workout.Sessions {
		var sessionID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO exercise_sessions (workout_id, position, exercise_name, duration_seconds, distance_meters)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
			workoutID,
			session.Position,
			session.ExerciseName,
			session.DurationSeconds,
			session.DistanceMeters,
		).Scan(&sessionID)
		if err != nil {
			return 0, fmt.Errorf("insert exercise session %d: %w", session.Position, mapStoreErr(err))
		}

		for i, set := range session.Sets {
			setRows = append(setRows, []any{sessionID, i, set.Weight, set.Reps})
		}
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"exercise_sets"},
		[]string{"exercise_session_id", "position", "weight", "reps"},
		pgx.CopyFromRows(setRows),
	)
	if err != nil {
		return 0, fmt.Errorf("insert exercise sets: %w", mapStoreErr(err))
	}
	if int(copied) != len(setRows) {
		err = fmt.Errorf("insert exercise sets: copied %d of %d rows", copied, len(setRows))
		return 0, err
	}

	span.SetAttributes(attribute.Int64("workout.id", workoutID))
	return workoutID, nil
}

// Get returns the user's workout with its sessions and sets.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("workout.id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, start_time, end_time, calories_burned, workout_type_id, created_at
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("select workout: %w", err)
	}
	workouts, err := pgx.CollectRows(rows, scanWorkout)
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	if len(workouts) == 0 {
		return nil, ErrWorkoutNotFound
	}

	if err := loadSessions(ctx, r.db, workouts); err != nil {
		return nil, err
	}
	return &workouts[0], nil
}

// List returns a page (1-based) of the user's workouts, newest first, and the total count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, page, size int) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("size", size))

	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM workouts WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, start_time, end_time, calories_burned, workout_type_id, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY start_time DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("list workouts: %w", err)
	}
	workouts, err := pgx.CollectRows(rows, scanWorkout)
	if err != nil {
		return nil, 0, fmt.Errorf("scan workouts: %w", err)
	}

	if err := loadSessions(ctx, r.db, workouts); err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

func scanWorkout(row pgx.CollectableRow) (Workout, error) {
	var (
		w    Workout
		date time.Time
	)
	err := row.Scan(
		&w.ID, &w.UserID, &date, &w.StartTime, &w.EndTime,
		&w.CaloriesBurned, &w.WorkoutTypeID, &w.CreatedAt,
	)
	w.Date = pkg.DateOf(date)
	w.Sessions = make([]ExerciseSession, 0)
	return w, err
}

// loadSessions fills in sessions (ordered by position) and their sets for the given workouts.
func loadSessions(ctx context.Context, q querier, workouts []Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	workoutIdx := make(map[int64]int, len(workouts))
	ids := make([]int64, 0, len(workouts))
	for i, w := range workouts {
		workoutIdx[w.ID] = i
		ids = append(ids, w.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT s.workout_id, s.id, s.position, s.exercise_name, s.duration_seconds, s.distance_meters, s.created_at,
		       es.weight, es.reps
		FROM exercise_sessions s
		JOIN exercise_sets es ON es.exercise_session_id = s.id
		WHERE s.workout_id = ANY($1)
		ORDER BY s.workout_id, s.position, es.position
	`, ids)
	if err != nil {
		return fmt.Errorf("select exercise sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			workoutID int64
			session   ExerciseSession
			set       ExerciseSet
		)
		if err := rows.Scan(
			&workoutID, &session.ID, &session.Position, &session.ExerciseName,
			&session.DurationSeconds, &session.DistanceMeters, &session.CreatedAt,
			&set.Weight, &set.Reps,
		); err != nil {
			return fmt.Errorf("scan exercise session: %w", err)
		}

		w := &workouts[workoutIdx[workoutID]]
		if n := len(w.Sessions); n > 0 && w.Sessions[n-1].ID == session.ID {
			w.Sessions[n-1].Sets = append(w.Sessions[n-1].Sets, set)
			continue
		}
		session.Sets = []ExerciseSet{set}
		w.Sessions = append(w.Sessions, session)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate exercise sessions: %w", err)
	}
	return nil
}

func mapStoreErr(err error) error {
	if !pkg.IsForeignKeyViolationError(err) {
		return err
	}
	switch pkg.ForeignKeyConstraint(err) {
	case fkWorkoutUser:
		return fmt.Errorf("%w: %w", ErrUnknownUser, err)
	case fkWorkoutType:
		return fmt.Errorf("%w: %w", ErrUnknownWorkoutType, err)
	default:
		return err
	}
}
