package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/internal/users"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	SignUp(ctx context.Context, req SignUpRequest) (*TokenResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (*TokenResponse, error)
	SignOut(ctx context.Context, claims *Claims) error
	Me(ctx context.Context, userID uuid.UUID) (*users.User, error)
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the auth routes. Middlewares passed in (e.g. rate limiting)
// apply to sign-up and sign-in only.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, openRoutesMiddlewares ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/sign-out", handler.HandleSignOut).Methods("POST", "OPTIONS").Name("sign-out")
	authRouter.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	openRouter := authRouter.NewRoute().Subrouter()
	openRouter.HandleFunc("/sign-up", handler.HandleSignUp).Methods("POST", "OPTIONS").Name("sign-up")
	openRouter.HandleFunc("/sign-in", handler.HandleSignIn).Methods("POST", "OPTIONS").Name("sign-in")
	openRouter.Use(openRoutesMiddlewares...)
}

func (handler *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-up")
	defer span.End()

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("sign up, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	tokenResp, err := handler.service.SignUp(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			pkg.WriteErrorResponse(w, http.StatusConflict, "User already exists", "")
			return
		}
		if status := pkg.WriteError(w, err, "sign up failed", tracing.TraceID(ctx)); status >= 500 {
			log.Errorf("sign up [%s]: %s", req.Email, err)
		}
		return
	}

	pkg.WriteJSON(w, tokenResp, http.StatusCreated)
}

func (handler *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-in")
	defer span.End()

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("sign in, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	tokenResp, err := handler.service.SignIn(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Tracef("failed sign in attempt for: %s", req.Email)
			pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		if status := pkg.WriteError(w, err, "sign in failed", tracing.TraceID(ctx)); status >= 500 {
			log.Errorf("sign in [%s]: %s", req.Email, err)
		}
		return
	}

	pkg.WriteJSON(w, tokenResp, http.StatusOK)
}

func (handler *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.sign-out")
	defer span.End()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := handler.service.SignOut(ctx, claims); err != nil {
		log.Errorf("sign out [%s]: %s", claims.Subject, err)
		pkg.WriteError(w, err, "sign out failed", tracing.TraceID(ctx))
		return
	}

	pkg.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	user, err := handler.service.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// token outlived its user
			pkg.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", "")
			return
		}
		log.Errorf("get me [%s]: %s", userID, err)
		pkg.WriteError(w, err, "failed to get user", tracing.TraceID(ctx))
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}
