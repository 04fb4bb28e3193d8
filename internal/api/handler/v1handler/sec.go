package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"scamwatch/internal/config"
	"scamwatch/pkg/domain"
	"scamwatch/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// UserIDKey carries the authenticated domain.UserID in the request context.
const UserIDKey contextKey = "userID"

// AdminKey carries the admin claim of the authenticated user.
const AdminKey contextKey = "admin"

// SecHandlerOptions configure token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key bearer tokens are verified
	// against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies bearer tokens and guards routes. Tokens are RS256 JWTs
// whose subject is the user ID; an "admin" claim grants access to admin routes.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}

	return &SecHandler{publicKey: pub}, nil
}

// tokenClaims are the registered claims plus the admin flag.
type tokenClaims struct {
	jwt.RegisteredClaims

	Admin bool `json:"admin,omitempty"`
}

// HandleBearerAuth verifies the token and returns a context carrying the user
// ID and admin flag. All verification failures map to ErrUnauthorized.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(uid))
	ctx = context.WithValue(ctx, AdminKey, claims.Admin)

	return ctx, nil
}

// RequireUser is a middleware that rejects requests without a valid bearer
// token and stores the authenticated identity in the request context.
func (s *SecHandler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is RequireUser plus a check on the admin claim.
func (s *SecHandler) RequireAdmin(next http.Handler) http.Handler {
	return s.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			WriteError(w, r, serrors.With(serrors.ErrForbidden, "admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	}))
}

// GetUserIDFromContext returns the authenticated user ID stored by
// HandleBearerAuth, or the zero ID when absent.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if v, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return v
	}

	return domain.UserID{}
}

// IsAdminFromContext reports whether the authenticated user carries the admin
// claim.
func IsAdminFromContext(ctx context.Context) bool {
	v, ok := ctx.Value(AdminKey).(bool)

	return ok && v
}
