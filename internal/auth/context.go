package auth

import "context"

type contextKey string

const identityKey contextKey = "fitlog-identity"

// Identity is the authenticated user of the current request.
type Identity struct {
	UserID   int
	Username string
	// Token is the session token the identity was resolved from.
	Token string
}

func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the current user, if the request is authenticated.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}
