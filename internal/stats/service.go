package stats

import (
	"context"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/internal/users"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultMaxWindowDays = 366

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats

type statsRepo interface {
	Summary(ctx context.Context, userID uuid.UUID, from pkg.Date) (StatsSummary, error)
	Frequency(ctx context.Context, userID uuid.UUID, from pkg.Date) ([]FrequencyPoint, error)
	FrequencyBetween(ctx context.Context, userID uuid.UUID, from, to pkg.Date) ([]FrequencyPoint, error)
}

type usersRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type statsCache interface {
	Get(userID uuid.UUID, windowDays int, today pkg.Date) (*Response, uint64, bool)
	Set(userID uuid.UUID, gen uint64, windowDays int, today pkg.Date, resp *Response)
}

type Service struct {
	repo          statsRepo
	users         usersRepo
	cache         statsCache
	location      *time.Location
	maxWindowDays int
	now           func() time.Time
}

// NewService builds the stats service. cache may be nil.
func NewService(
	repo statsRepo,
	usersRepo usersRepo,
	cache statsCache,
	location *time.Location,
	maxWindowDays int,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if maxWindowDays < 1 {
		maxWindowDays = DefaultMaxWindowDays
	}
	return &Service{
		repo:          repo,
		users:         usersRepo,
		cache:         cache,
		location:      location,
		maxWindowDays: maxWindowDays,
		now:           time.Now,
	}
}

// Today is the current calendar date in the service location.
func (s *Service) Today() pkg.Date {
	return pkg.DateOf(s.now().In(s.location))
}

// ComputeStats aggregates the user's workouts dated within the last windowDays days.
func (s *Service) ComputeStats(ctx context.Context, userID uuid.UUID, windowDays int) (_ StatsSummary, _ []FrequencyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.compute")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Int("window.days", windowDays),
	)

	if windowDays < 1 || windowDays > s.maxWindowDays {
		return StatsSummary{}, nil, pkg.NewValidationError("days must be between 1 and %d", s.maxWindowDays)
	}

	today := s.Today()
	var cacheGen uint64
	if s.cache != nil {
		cached, gen, ok := s.cache.Get(userID, windowDays, today)
		if ok {
			log.Tracef("stats for user %s, %d days, found in cache", userID, windowDays)
			return cached.Stats, cached.Frequency, nil
		}
		cacheGen = gen
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return StatsSummary{}, nil, err
	}

	startDate := today.AddDays(-windowDays)
	summary, err := s.repo.Summary(ctx, userID, startDate)
	if err != nil {
		return StatsSummary{}, nil, pkg.WrapInternal("compute stats summary", err)
	}
	frequency, err := s.repo.Frequency(ctx, userID, startDate)
	if err != nil {
		return StatsSummary{}, nil, pkg.WrapInternal("compute stats frequency", err)
	}
	if frequency == nil {
		frequency = []FrequencyPoint{}
	}

	if s.cache != nil {
		s.cache.Set(userID, cacheGen, windowDays, today, &Response{Stats: summary, Frequency: frequency})
	}

	return summary, frequency, nil
}

// MonthFrequency returns per-date workout counts for every date of the month containing month.
func (s *Service) MonthFrequency(ctx context.Context, userID uuid.UUID, month pkg.Date) (_ []FrequencyPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.month-frequency")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("month", month.String()))

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	frequency, err := s.repo.FrequencyBetween(ctx, userID, month.FirstOfMonth(), month.LastOfMonth())
	if err != nil {
		return nil, pkg.WrapInternal("month frequency", err)
	}
	if frequency == nil {
		frequency = []FrequencyPoint{}
	}
	return frequency, nil
}

// MonthGrid builds the intensity calendar of the month containing month.
func (s *Service) MonthGrid(ctx context.Context, userID uuid.UUID, month pkg.Date) (MonthGrid, error) {
	frequency, err := s.MonthFrequency(ctx, userID, month)
	if err != nil {
		return MonthGrid{}, err
	}
	return BuildMonthGrid(month, frequency), nil
}

func (s *Service) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return pkg.WrapInternal("check user", err)
	}
	if !exists {
		return pkg.WrapNotFound(users.ErrUserNotFound)
	}
	return nil
}
