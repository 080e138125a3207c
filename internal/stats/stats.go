package stats

import (
	"github.com/2beens/gymtrack/pkg"
)

// StatsSummary aggregates a user's workouts within a window.
// AverageWorkoutDuration is in seconds.
type StatsSummary struct {
	TotalWorkouts          int     `json:"totalWorkouts"`
	TotalExercises         int     `json:"totalExercises"`
	TotalSets              int     `json:"totalSets"`
	TotalWeight            float64 `json:"totalWeight"`
	AverageWorkoutDuration float64 `json:"averageWorkoutDuration"`
}

// FrequencyPoint is the number of workouts on one date.
type FrequencyPoint struct {
	Date  pkg.Date `json:"date"`
	Count int      `json:"count"`
}

type Response struct {
	Stats     StatsSummary     `json:"stats"`
	Frequency []FrequencyPoint `json:"frequency"`
}
