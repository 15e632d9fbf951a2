package middleware

import (
	"net/http"

	"github.com/phrazzld/blog-api/internal/api"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// AuthMiddleware gates the blog routes behind token verification.
//
// The authorization header carries the bare token, no Bearer prefix.
// Every failure branch writes its response and halts; an unauthenticated
// request never reaches a route handler.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given
// dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the token from the authorization header and adds
// the caller's user ID to the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			api.RespondWithKind(w, r, api.KindNotLoggedIn)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), authHeader)
		if err != nil {
			api.RespondWithKind(w, r, api.KindAuthError)
			return
		}

		// A verified token with no usable identifier is treated the same
		// as having presented nothing.
		if claims == nil || claims.UserID == 0 {
			api.RespondWithKind(w, r, api.KindNotLoggedIn)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
