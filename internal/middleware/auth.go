package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const LoginPath = "/login"

type sessionCookies interface {
	SessionToken(r *http.Request) (string, bool)
	ClearSession(w http.ResponseWriter)
	RedirectWithFlash(w http.ResponseWriter, r *http.Request, url string, flashes ...auth.Flash)
}

//go:generate mockgen -destination=auth_mocks_test.go -package=middleware_test github.com/2beens/fitlog/internal/middleware IdentityLoader

// IdentityLoader resolves a user id stored in a session to the user identity.
type IdentityLoader interface {
	Identity(ctx context.Context, userID int) (*auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	cookies               sessionCookies
	checker               auth.Checker
	identities            IdentityLoader
	protectedPaths        map[string]bool
	protectedPathPrefixes []string
}

func NewAuthMiddlewareHandler(
	cookies sessionCookies,
	checker auth.Checker,
	identities IdentityLoader,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		cookies:    cookies,
		checker:    checker,
		identities: identities,
		protectedPaths: map[string]bool{
			"/dashboard": true,
			"/workouts":  true,
			"/logout":    true,
		},
		protectedPathPrefixes: []string{
			"/dashboard/",
			"/workouts/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsProtected(path string) bool {
	if h.protectedPaths[path] {
		return true
	}
	for _, prefix := range h.protectedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck resolves the session cookie to the current user and stores it in
// the request context. Requests for protected paths without a user are
// redirected to the login page.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			identity := h.resolveIdentity(ctx, w, r)
			if identity != nil {
				span.SetAttributes(attribute.Int("user.id", identity.UserID))
				r = r.WithContext(auth.ContextWithIdentity(r.Context(), identity))
			}

			if identity == nil && h.pathIsProtected(r.URL.Path) {
				log.Tracef("[no session] [auth middleware] unauthenticated => %s", r.URL.Path)
				span.SetStatus(codes.Error, "not-logged")
				h.cookies.RedirectWithFlash(w, r, LoginPath, auth.Flash{
					Category: auth.FlashInfo,
					Message:  "Please log in to access this page.",
				})
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) resolveIdentity(ctx context.Context, w http.ResponseWriter, r *http.Request) *auth.Identity {
	token, ok := h.cookies.SessionToken(r)
	if !ok {
		return nil
	}

	userID, isLogged, err := h.checker.UserID(ctx, token)
	if err != nil {
		log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
		return nil
	}
	if !isLogged {
		// stale cookie, the session is gone
		h.cookies.ClearSession(w)
		return nil
	}

	identity, err := h.identities.Identity(ctx, userID)
	if err != nil {
		log.Warnf("[auth middleware] session user %d not resolved: %s", userID, err)
		return nil
	}
	identity.Token = token
	return identity
}
