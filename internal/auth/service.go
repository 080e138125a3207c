package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/internal/users"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token revoked")

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type usersRepo interface {
	Add(ctx context.Context, user users.User) (*users.User, error)
	Get(ctx context.Context, id uuid.UUID) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type Service struct {
	usersRepo        usersRepo
	tokens           *TokenIssuer
	revocations      *RevocationStore
	passwordHashCost int
	metrics          *metrics.Manager
}

func NewService(
	usersRepo usersRepo,
	tokens *TokenIssuer,
	revocations *RevocationStore,
	passwordHashCost int,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		usersRepo:        usersRepo,
		tokens:           tokens,
		revocations:      revocations,
		passwordHashCost: passwordHashCost,
		metrics:          metricsManager,
	}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (_ *TokenResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.sign-up")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, pkg.NewValidationError("email and password are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, pkg.NewValidationError("password must be at least %d characters long", minPasswordLength)
	}
	if len(req.Password) > pkg.MaxPasswordBytes {
		return nil, pkg.NewValidationError("password must be at most %d bytes long", pkg.MaxPasswordBytes)
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, pkg.NewValidationError("invalid email")
	}

	passwordHash, err := pkg.HashPasswordWithCost(req.Password, s.passwordHashCost)
	if err != nil {
		return nil, pkg.WrapInternal("hash password", err)
	}

	user, err := s.usersRepo.Add(ctx, users.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	})
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			return nil, err
		}
		return nil, pkg.WrapInternal("add user", err)
	}

	if s.metrics != nil {
		s.metrics.CounterSignUps.Inc()
	}
	log.Debugf("new user signed up: %s", user.ID)

	return s.issue(user.ID)
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (_ *TokenResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.sign-in")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, pkg.NewValidationError("email and password are required")
	}

	user, err := s.usersRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, pkg.WrapInternal("get user by email", err)
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

func (s *Service) SignOut(ctx context.Context, claims *Claims) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.sign-out")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if claims == nil || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return pkg.WrapInternal("sign out", err)
	}
	return nil
}

// Authenticate verifies the bearer token and rejects signed-out ones.
func (s *Service) Authenticate(ctx context.Context, token string) (_ *Claims, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.authenticate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, pkg.WrapInternal("authenticate", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (_ *users.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.me")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.usersRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, pkg.WrapNotFound(err)
		}
		return nil, pkg.WrapInternal("get user", err)
	}
	return user, nil
}

func (s *Service) issue(userID uuid.UUID) (*TokenResponse, error) {
	token, _, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, pkg.WrapInternal("issue token", fmt.Errorf("user %s: %w", userID, err))
	}
	return &TokenResponse{Token: token}, nil
}
