package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MaxPageSize = 100

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*Workout, error)
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]Workout, int, error)
}

// statsInvalidator drops cached stats of a user after their data changed.
type statsInvalidator interface {
	Invalidate(userID uuid.UUID)
}

type Service struct {
	repo        workoutsRepo
	invalidator statsInvalidator
	metrics     *metrics.Manager
	location    *time.Location
	now         func() time.Time
}

func NewService(
	repo workoutsRepo,
	invalidator statsInvalidator,
	metricsManager *metrics.Manager,
	location *time.Location,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:        repo,
		invalidator: invalidator,
		metrics:     metricsManager,
		location:    location,
		now:         time.Now,
	}
}

// Submit validates and stores a finished workout, returning its ID.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.submit")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if err := req.Validate(); err != nil {
		s.countFailure("validation")
		return 0, err
	}

	workout := req.toWorkout(userID, s.now(), s.location)
	workoutID, err := s.repo.Add(ctx, workout)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownUser):
			s.countFailure("unknown_user")
			return 0, pkg.WrapNotFound(err)
		case errors.Is(err, ErrUnknownWorkoutType):
			s.countFailure("validation")
			return 0, pkg.NewValidationError("workout type %d does not exist", *req.WorkoutTypeID)
		default:
			s.countFailure("storage")
			return 0, pkg.WrapInternal("store workout", err)
		}
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(userID)
	}
	if s.metrics != nil {
		s.metrics.CounterWorkoutsSubmitted.Inc()
	}
	log.Debugf("workout %d stored for user %s: %d exercises", workoutID, userID, len(workout.Sessions))

	return workoutID, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workout, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, pkg.WrapNotFound(err)
		}
		return nil, pkg.WrapInternal("get workout", err)
	}
	return workout, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, page, size int) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if page < 1 {
		return nil, 0, pkg.NewValidationError("invalid page (has to be a positive value)")
	}
	if size < 1 || size > MaxPageSize {
		return nil, 0, pkg.NewValidationError("invalid size (has to be between 1 and %d)", MaxPageSize)
	}

	workouts, total, err := s.repo.List(ctx, userID, page, size)
	if err != nil {
		return nil, 0, pkg.WrapInternal("list workouts", err)
	}
	return workouts, total, nil
}

func (s *Service) countFailure(reason string) {
	if s.metrics != nil {
		s.metrics.CounterWorkoutsFailed.WithLabelValues(reason).Inc()
	}
}
