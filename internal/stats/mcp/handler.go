package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/gymtrack/internal/stats"
	"github.com/2beens/gymtrack/internal/workouts"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type statsService interface {
	Today() pkg.Date
	ComputeStats(ctx context.Context, userID uuid.UUID, windowDays int) (stats.StatsSummary, []stats.FrequencyPoint, error)
	MonthGrid(ctx context.Context, userID uuid.UUID, month pkg.Date) (stats.MonthGrid, error)
}

type workoutsService interface {
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]workouts.Workout, int, error)
}

// Handler serves MCP tool calls for a single user.
type Handler struct {
	userID   uuid.UUID
	stats    statsService
	workouts workoutsService
}

func NewHandler(userID uuid.UUID, statsService statsService, workoutsService workoutsService) *Handler {
	return &Handler{
		userID:   userID,
		stats:    statsService,
		workouts: workoutsService,
	}
}

// WorkoutStatsInput is the input for get_workout_stats.
type WorkoutStatsInput struct {
	Days int `json:"days,omitempty" jsonschema:"Window size in days (default 30)"`
}

func (h *Handler) GetWorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutStatsInput) (*mcp.CallToolResult, any, error) {
		days := in.Days
		if days == 0 {
			days = stats.DefaultWindowDays
		}
		summary, frequency, err := h.stats.ComputeStats(ctx, h.userID, days)
		if err != nil {
			return errorResult("Error computing stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats.Response{Stats: summary, Frequency: frequency})
	}
}

// MonthCalendarInput is the input for get_month_calendar.
type MonthCalendarInput struct {
	Month string `json:"month,omitempty" jsonschema:"Month (YYYY-MM), defaults to the current month"`
}

func (h *Handler) GetMonthCalendarTool() func(context.Context, *mcp.CallToolRequest, MonthCalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MonthCalendarInput) (*mcp.CallToolResult, any, error) {
		var month pkg.Date
		if in.Month == "" {
			month = h.stats.Today()
		} else {
			parsed, err := time.Parse("2006-01", in.Month)
			if err != nil {
				return errorResult("Invalid month: use YYYY-MM"), nil, nil
			}
			month = pkg.DateOf(parsed)
		}

		grid, err := h.stats.MonthGrid(ctx, h.userID, month)
		if err != nil {
			return errorResult("Error building calendar: " + err.Error()), nil, nil
		}
		return jsonResult(grid)
	}
}

// RecentWorkoutsInput is the input for get_recent_workouts.
type RecentWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of workouts to return (default 10, max 100)"`
}

func (h *Handler) GetRecentWorkoutsTool() func(context.Context, *mcp.CallToolRequest, RecentWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecentWorkoutsInput) (*mcp.CallToolResult, any, error) {
		limit := in.Limit
		if limit == 0 {
			limit = 10
		}
		list, total, err := h.workouts.List(ctx, h.userID, 1, limit)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(workouts.ListResponse{Workouts: list, Total: total})
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
