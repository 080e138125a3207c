package workouts

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

const (
	// MaxExerciseNameLength is the exercise_name column width, in characters.
	MaxExerciseNameLength = 255
	// MaxCount bounds reps, calories and durations to the INT columns storing them.
	MaxCount = math.MaxInt32
)

type ExerciseInput struct {
	Name            string        `json:"name"`
	Sets            []ExerciseSet `json:"sets"`
	DurationSeconds *int          `json:"durationSeconds,omitempty"`
	DistanceMeters  *float64      `json:"distanceMeters,omitempty"`
}

// SubmitRequest is a finished workout as sent by the app. Only Exercises is required.
type SubmitRequest struct {
	Exercises      []ExerciseInput `json:"exercises"`
	StartedAt      *time.Time      `json:"startedAt,omitempty"`
	FinishedAt     *time.Time      `json:"finishedAt,omitempty"`
	CaloriesBurned *int            `json:"caloriesBurned,omitempty"`
	WorkoutTypeID  *int64          `json:"workoutTypeId,omitempty"`
}

// Validate checks the request without touching storage.
func (r SubmitRequest) Validate() error {
	if len(r.Exercises) == 0 {
		return pkg.NewValidationError("at least one exercise is required")
	}

	for i, ex := range r.Exercises {
		name := strings.TrimSpace(ex.Name)
		if name == "" {
			return pkg.NewValidationError("exercise %d: name is required", i+1)
		}
		if utf8.RuneCountInString(name) > MaxExerciseNameLength {
			return pkg.NewValidationError("exercise %d: name must be at most %d characters", i+1, MaxExerciseNameLength)
		}
		if len(ex.Sets) == 0 {
			return pkg.NewValidationError("exercise %d (%s): at least one set is required", i+1, name)
		}
		for j, set := range ex.Sets {
			if set.Reps < 1 || set.Reps > MaxCount {
				return pkg.NewValidationError("exercise %d (%s), set %d: reps must be between 1 and %d", i+1, name, j+1, MaxCount)
			}
			if set.Weight < 0 || math.IsNaN(set.Weight) || math.IsInf(set.Weight, 0) {
				return pkg.NewValidationError("exercise %d (%s), set %d: weight must be a non-negative number", i+1, name, j+1)
			}
		}
		if ex.DurationSeconds != nil && (*ex.DurationSeconds < 0 || *ex.DurationSeconds > MaxCount) {
			return pkg.NewValidationError("exercise %d (%s): duration must be between 0 and %d seconds", i+1, name, MaxCount)
		}
		if ex.DistanceMeters != nil && (*ex.DistanceMeters < 0 || math.IsNaN(*ex.DistanceMeters) || math.IsInf(*ex.DistanceMeters, 0)) {
			return pkg.NewValidationError("exercise %d (%s): distance must not be negative", i+1, name)
		}
	}

	if r.CaloriesBurned != nil && (*r.CaloriesBurned < 0 || *r.CaloriesBurned > MaxCount) {
		return pkg.NewValidationError("calories burned must be between 0 and %d", MaxCount)
	}
	if r.WorkoutTypeID != nil && *r.WorkoutTypeID < 1 {
		return pkg.NewValidationError("invalid workout type id")
	}
	if r.StartedAt != nil && r.FinishedAt != nil && r.FinishedAt.Before(*r.StartedAt) {
		return pkg.NewValidationError("finishedAt must not be before startedAt")
	}

	return nil
}

// toWorkout builds the record to store. Missing timestamps default to now; the
// workout date is the start's calendar date in loc.
func (r SubmitRequest) toWorkout(userID uuid.UUID, now time.Time, loc *time.Location) Workout {
	startTime, endTime := now, now
	switch {
	case r.StartedAt != nil && r.FinishedAt != nil:
		startTime, endTime = *r.StartedAt, *r.FinishedAt
	case r.StartedAt != nil:
		startTime = *r.StartedAt
		if startTime.After(endTime) {
			endTime = startTime
		}
	case r.FinishedAt != nil:
		endTime = *r.FinishedAt
		startTime = endTime
	}

	calories := 0
	if r.CaloriesBurned != nil {
		calories = *r.CaloriesBurned
	}

	sessions := make([]ExerciseSession, 0, len(r.Exercises))
	for i, ex := range r.Exercises {
		sets := make([]ExerciseSet, len(ex.Sets))
		copy(sets, ex.Sets)
		sessions = append(sessions, ExerciseSession{
			Position:        i,
			ExerciseName:    strings.TrimSpace(ex.Name),
			Sets:            sets,
			DurationSeconds: ex.DurationSeconds,
			DistanceMeters:  ex.DistanceMeters,
		})
	}

	return Workout{
		UserID:         userID,
		Date:           pkg.DateOf(startTime.In(loc)),
		StartTime:      startTime,
		EndTime:        endTime,
		CaloriesBurned: calories,
		WorkoutTypeID:  r.WorkoutTypeID,
		Sessions:       sessions,
	}
}
