package stats

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/internal/users"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultWindowDays = 30

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Today() pkg.Date
	ComputeStats(ctx context.Context, userID uuid.UUID, windowDays int) (StatsSummary, []FrequencyPoint, error)
	MonthGrid(ctx context.Context, userID uuid.UUID, month pkg.Date) (MonthGrid, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	statsRouter := mainRouter.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	statsRouter.HandleFunc("/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")
}

// HandleStats serves GET /stats?days=N. A missing or non-numeric days falls back to 30.
func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	windowDays := DefaultWindowDays
	if days, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil {
		windowDays = days
	}
	span.SetAttributes(attribute.Int("window.days", windowDays))

	summary, frequency, err := handler.service.ComputeStats(ctx, userID, windowDays)
	if err != nil {
		handler.writeError(ctx, w, err, "Failed to fetch stats")
		return
	}

	pkg.WriteJSON(w, Response{Stats: summary, Frequency: frequency}, http.StatusOK)
}

// HandleCalendar serves GET /stats/calendar?month=YYYY-MM, defaulting to the current month.
func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var month pkg.Date
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := time.Parse(monthLayout, monthParam)
		if err != nil {
			pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid month, expected YYYY-MM", "")
			return
		}
		month = pkg.DateOf(parsed)
	} else {
		month = handler.service.Today()
	}
	span.SetAttributes(attribute.String("month", month.String()))

	grid, err := handler.service.MonthGrid(ctx, userID, month)
	if err != nil {
		handler.writeError(ctx, w, err, "Failed to build calendar")
		return
	}

	pkg.WriteJSON(w, grid, http.StatusOK)
}

func (handler *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, internalMsg string) {
	if errors.Is(err, users.ErrUserNotFound) {
		// token outlived its user
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	if status := pkg.WriteError(w, err, internalMsg, tracing.TraceID(ctx)); status >= 500 {
		log.Errorf("%s: %s", internalMsg, err)
	}
}
