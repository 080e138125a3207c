package stats

import (
	"github.com/2beens/gymtrack/pkg"
)

const (
	DaysPerWeek  = 7
	MaxIntensity = 4
	monthLayout  = "2006-01"
)

// Cell is one calendar slot. Date is nil for padding before the first and
// after the last day of the month.
type Cell struct {
	Date      *pkg.Date `json:"date"`
	Intensity int       `json:"intensity"`
}

type MonthGrid struct {
	Month string   `json:"month"`
	Weeks [][]Cell `json:"weeks"`
}

// IntensityLevel buckets a day's workout count: 0 -> 0, 1 -> 2, 2 -> 3, 3+ -> 4.
// Level 1 exists in the legend but no count maps to it.
func IntensityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 2
	case count == 2:
		return 3
	default:
		return MaxIntensity
	}
}

// BuildMonthGrid lays out the month containing today in Sunday-first week rows
// of exactly 7 cells, each date carrying the intensity of its frequency count.
// Dates are matched as calendar dates; for a date listed twice the first entry wins.
func BuildMonthGrid(today pkg.Date, frequency []FrequencyPoint) MonthGrid {
	first := today.FirstOfMonth()
	last := today.LastOfMonth()

	counts := make(map[pkg.Date]int, len(frequency))
	for _, point := range frequency {
		if _, seen := counts[point.Date]; !seen {
			counts[point.Date] = point.Count
		}
	}

	leading := int(first.Weekday())
	cells := make([]Cell, 0, leading+last.Day()+DaysPerWeek)
	for range leading {
		cells = append(cells, Cell{})
	}
	for day := first; !day.After(last); day = day.AddDays(1) {
		date := day
		cells = append(cells, Cell{
			Date:      &date,
			Intensity: IntensityLevel(counts[day]),
		})
	}
	for len(cells)%DaysPerWeek != 0 {
		cells = append(cells, Cell{})
	}

	weeks := make([][]Cell, 0, len(cells)/DaysPerWeek)
	for i := 0; i < len(cells); i += DaysPerWeek {
		weeks = append(weeks, cells[i:i+DaysPerWeek:i+DaysPerWeek])
	}

	return MonthGrid{
		Month: first.Time().Format(monthLayout),
		Weeks: weeks,
	}
}
