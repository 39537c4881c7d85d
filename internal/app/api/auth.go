package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dockhand/internal/app/errors"
	"dockhand/internal/config"
)

// Role grants access to a group of routes
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Claims are carried by every API token
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

type claimsKey struct{}

// Authenticator issues and verifies HS256 bearer tokens.
// Without a secret every request is treated as an administrator.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

// NewAuthenticator creates an authenticator for server.secret
func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.Server.Secret),
		now:    time.Now,
	}
}

// Enabled reports whether tokens are required
func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

// Issue signs a token for role valid for ttl
func (a *Authenticator) Issue(role Role, ttl time.Duration) (string, error) {
	if !a.Enabled() {
		return "", errors.ErrSecretRequired
	}

	now := a.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses token and checks its signature, expiry and role
func (a *Authenticator) Verify(token string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)

	claims := &Claims{}

	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	if claims.Role != RoleAdmin && claims.Role != RoleUser {
		return nil, fmt.Errorf("%w: unknown role %q", errors.ErrInvalidToken, claims.Role)
	}

	return claims, nil
}

// Restricted admits any authenticated caller
func (a *Authenticator) Restricted(next http.Handler) http.Handler {
	return a.require(RoleUser, next)
}

// Administrator admits administrators only
func (a *Authenticator) Administrator(next http.Handler) http.Handler {
	return a.require(RoleAdmin, next)
}

func (a *Authenticator) require(role Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enabled() {
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), &Claims{Role: RoleAdmin})))
			return
		}

		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, errors.ErrUnauthorized)
			return
		}

		claims, err := a.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, errors.ErrUnauthorized)
			return
		}

		if role == RoleAdmin && claims.Role != RoleAdmin {
			writeError(w, http.StatusForbidden, errors.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// ClaimsFrom returns the claims of the authenticated caller
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// bearerToken reads the Authorization header, or the token query parameter for websocket clients
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	return r.URL.Query().Get("token")
}
