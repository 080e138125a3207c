package workouts

import (
	"encoding/json"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

// ExerciseSet is one (weight, reps) entry of an exercise, in the order performed.
type ExerciseSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

func (s ExerciseSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// ExerciseSession is one exercise performed within a workout. The full set
// list is kept; the per-exercise summary is derived from it.
type ExerciseSession struct {
	ID              int64         `json:"id"`
	Position        int           `json:"position"`
	ExerciseName    string        `json:"exerciseName"`
	Sets            []ExerciseSet `json:"sets"`
	DurationSeconds *int          `json:"durationSeconds,omitempty"`
	DistanceMeters  *float64      `json:"distanceMeters,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type SessionSummary struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (s ExerciseSession) SetCount() int {
	return len(s.Sets)
}

func (s ExerciseSession) TotalReps() int {
	total := 0
	for _, set := range s.Sets {
		total += set.Reps
	}
	return total
}

func (s ExerciseSession) MaxWeight() float64 {
	maxWeight := 0.0
	for _, set := range s.Sets {
		maxWeight = max(maxWeight, set.Weight)
	}
	return maxWeight
}

func (s ExerciseSession) Volume() float64 {
	volume := 0.0
	for _, set := range s.Sets {
		volume += set.Volume()
	}
	return volume
}

func (s ExerciseSession) Summary() SessionSummary {
	return SessionSummary{
		Sets:   s.SetCount(),
		Reps:   s.TotalReps(),
		Weight: s.MaxWeight(),
	}
}

func (s ExerciseSession) MarshalJSON() ([]byte, error) {
	type session ExerciseSession
	return json.Marshal(struct {
		session
		Summary SessionSummary `json:"summary"`
	}{
		session: session(s),
		Summary: s.Summary(),
	})
}

type Workout struct {
	ID             int64             `json:"id"`
	UserID         uuid.UUID         `json:"userId"`
	Date           pkg.Date          `json:"date"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        time.Time         `json:"endTime"`
	CaloriesBurned int               `json:"caloriesBurned"`
	WorkoutTypeID  *int64            `json:"workoutTypeId,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	Sessions       []ExerciseSession `json:"exercises"`
}

// Duration is derived from the start and end times; it is never stored.
func (w Workout) Duration() time.Duration {
	return w.EndTime.Sub(w.StartTime)
}

func (w Workout) MarshalJSON() ([]byte, error) {
	type workout Workout
	return json.Marshal(struct {
		workout
		DurationSeconds int64 `json:"durationSeconds"`
	}{
		workout:         workout(w),
		DurationSeconds: int64(w.Duration().Seconds()),
	})
}
