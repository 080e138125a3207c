package workouts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

// MaxSubmitBodyBytes caps the size of a submitted workout.
const MaxSubmitBodyBytes = 256 << 10

var errBodyTooLarge = errors.New("body too large")

type workoutsService interface {
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*Workout, error)
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]Workout, int, error)
}

type SubmitResponse struct {
	Success   bool  `json:"success"`
	WorkoutID int64 `json:"workoutId"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/workouts", handler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-workout")
	mainRouter.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	mainRouter.HandleFunc("/workouts/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
}

func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.submit")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	req, err := decodeSubmitRequest(http.MaxBytesReader(w, r.Body, MaxSubmitBodyBytes))
	if errors.Is(err, errBodyTooLarge) {
		log.Tracef("submit workout for user %s: body over %d bytes", userID, MaxSubmitBodyBytes)
		pkg.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Invalid workout data", fmt.Sprintf("body must be at most %d bytes", MaxSubmitBodyBytes))
		return
	}
	if err != nil {
		log.Tracef("submit workout, invalid body: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "Invalid workout data", err.Error())
		return
	}

	workoutID, err := handler.service.Submit(ctx, userID, req)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			// token outlived its user
			pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
			return
		}
		if status := pkg.WriteError(w, err, "Failed to save workout", tracing.TraceID(ctx)); status >= 500 {
			log.Errorf("submit workout for user %s: %s", userID, err)
		}
		return
	}

	pkg.WriteJSON(w, SubmitResponse{Success: true, WorkoutID: workoutID}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "error, id NaN", "")
		return
	}

	workout, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		if status := pkg.WriteError(w, err, "Failed to get workout", tracing.TraceID(ctx)); status >= 500 {
			log.Errorf("get workout %d: %s", id, err)
		}
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "parse form error, parameter <page>", "")
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "parse form error, parameter <size>", "")
		return
	}

	workouts, total, err := handler.service.List(ctx, userID, page, size)
	if err != nil {
		if status := pkg.WriteError(w, err, "Failed to list workouts", tracing.TraceID(ctx)); status >= 500 {
			log.Errorf("list workouts: %s", err)
		}
		return
	}

	pkg.WriteJSON(w, ListResponse{Workouts: workouts, Total: total}, http.StatusOK)
}

// decodeSubmitRequest rejects bodies whose "exercises" is missing or not an array
// before decoding them into a SubmitRequest.
func decodeSubmitRequest(body io.Reader) (SubmitRequest, error) {
	var req SubmitRequest

	raw, err := io.ReadAll(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, errBodyTooLarge
		}
		return req, errors.New("cannot read body")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return req, errors.New("body must be a JSON object")
	}
	exercises, ok := fields["exercises"]
	if !ok {
		return req, errors.New("exercises is required")
	}
	if trimmed := bytes.TrimSpace(exercises); len(trimmed) == 0 || trimmed[0] != '[' {
		return req, errors.New("exercises must be an array")
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, errors.New("malformed workout fields")
	}
	return req, nil
}
