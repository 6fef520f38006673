package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users

type usersService interface {
	CreateUser(ctx context.Context, username, rawPassword string) (*User, error)
	VerifyCredentials(ctx context.Context, username, rawPassword string) (*User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type pageRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data any)
}

type Handler struct {
	usersService   usersService
	sessions       sessionService
	cookies        *auth.CookieCodec
	renderer       pageRenderer
	metricsManager *metrics.Manager
}

func NewHandler(
	usersService usersService,
	sessions sessionService,
	cookies *auth.CookieCodec,
	renderer pageRenderer,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		usersService:   usersService,
		sessions:       sessions,
		cookies:        cookies,
		renderer:       renderer,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	trustProxyHeaders bool,
) {
	mainRouter.HandleFunc("/signup", handler.HandleSignupPage).Methods("GET").Name("signup-page")
	mainRouter.HandleFunc("/login", handler.HandleLoginPage).Methods("GET").Name("login-page")
	mainRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET").Name("logout")

	// credential submissions are rate limited per client ip
	credentialsRouter := mainRouter.Methods("POST").Subrouter()
	credentialsRouter.HandleFunc("/signup", handler.HandleSignup).Name("signup")
	credentialsRouter.HandleFunc("/login", handler.HandleLogin).Name("login")
	credentialsRouter.Use(middleware.RateLimit(
		rateLimiter,
		"credentials",
		allowedPerMin,
		trustProxyHeaders,
		handler.metricsManager,
	))
}

func (handler *Handler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, r, "signup", nil)
}

func (handler *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, r, "login", nil)
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.signup")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("signup failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		handler.cookies.RedirectWithFlash(w, r, "/signup", auth.Flash{
			Category: auth.FlashWarning,
			Message:  "Please provide username and password",
		})
		return
	}

	user, err := handler.usersService.CreateUser(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			span.SetStatus(codes.Error, "duplicate-username")
			handler.cookies.RedirectWithFlash(w, r, "/signup", auth.Flash{
				Category: auth.FlashDanger,
				Message:  "Username already exists. Choose another.",
			})
			return
		}
		if errors.Is(err, ErrUsernameTooLong) || errors.Is(err, ErrPasswordTooLong) {
			span.SetStatus(codes.Error, "credentials-too-long")
			handler.cookies.RedirectWithFlash(w, r, "/signup", auth.Flash{
				Category: auth.FlashWarning,
				Message:  signupTooLongMessage(err),
			})
			return
		}
		log.Errorf("signup for [%s] failed: %s", username, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	handler.metricsManager.CounterSignups.Inc()
	log.Printf("new user signed up [%d]: %s", user.ID, user.Username)

	handler.cookies.RedirectWithFlash(w, r, "/login", auth.Flash{
		Category: auth.FlashSuccess,
		Message:  "Account created. You can now log in.",
	})
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("login failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	user, err := handler.usersService.VerifyCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Tracef("failed login attempt for user: %s", username)
			handler.metricsManager.CounterFailedLogins.Inc()
			handler.cookies.RedirectWithFlash(w, r, "/login", auth.Flash{
				Category: auth.FlashDanger,
				Message:  "Invalid username or password",
			})
			return
		}
		log.Errorf("login for [%s] failed: %s", username, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// a session the client already holds is never reused
	if oldToken, ok := handler.cookies.SessionToken(r); ok {
		if _, err := handler.sessions.Logout(ctx, oldToken); err != nil {
			log.Warnf("login, drop previous session: %s", err)
		}
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	if err := handler.cookies.SetSession(w, token); err != nil {
		log.Errorf("login failed, set session cookie: %s", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	handler.metricsManager.CounterLogins.Inc()
	log.Tracef("new login success for user [%d]", user.ID)

	handler.cookies.RedirectWithFlash(w, r, "/dashboard", auth.Flash{
		Category: auth.FlashSuccess,
		Message:  "Logged in successfully",
	})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.logout")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, identity.Token)
	if err != nil {
		log.Errorf("logout for user [%d] failed: %s", identity.UserID, err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		log.Warnf("logout for user [%d]: session already gone", identity.UserID)
	}

	handler.cookies.ClearSession(w)
	handler.cookies.RedirectWithFlash(w, r, "/", auth.Flash{
		Category: auth.FlashInfo,
		Message:  "Logged out",
	})
}

func signupTooLongMessage(err error) string {
	if errors.Is(err, ErrUsernameTooLong) {
		return fmt.Sprintf("Username must be at most %d characters", MaxUsernameLength)
	}
	return fmt.Sprintf("Password must be at most %d bytes", pkg.MaxPasswordBytes)
}
