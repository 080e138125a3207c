package mcp

import (
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only stats tools for one user:
// workout stats over a window, the month intensity calendar, recent workouts.
func NewServer(userID uuid.UUID, statsService statsService, workoutsService workoutsService, version string) *mcp.Server {
	h := NewHandler(userID, statsService, workoutsService)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtrack-stats",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns totals (workouts, exercises, sets, weight volume, average duration in seconds) and per-day workout counts for the last N days. Arg: days (default 30).",
	}, h.GetWorkoutStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_month_calendar",
		Description: "Returns the month as Sunday-first week rows where each day has an intensity 0-4 from its workout count. Arg: month (YYYY-MM, default current month).",
	}, h.GetMonthCalendarTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recent_workouts",
		Description: "Returns the most recent workouts with exercises and sets, newest first. Arg: limit (default 10, max 100).",
	}, h.GetRecentWorkoutsTool())

	return s
}
