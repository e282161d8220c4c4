package middlewares

import (
	"context"
	"errors"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies the bearer token and resolves the (id, role) pair
// into a directory-backed Actor for the handlers. Token issuance lives in
// a separate credential service; this side only trusts its signature.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := new(actorClaims)
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method " + token.Method.Alg())
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		role := models.Role(claims.Role)
		if !role.Valid() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidRoleType(errors.New("unknown role "+claims.Role)))
			return
		}

		actor, err := m.DirectoryRepository.FindActor(r.Context(), role, claims.Subject)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if actor == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(errors.New("actor no longer exists in the directory")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_KEY, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles narrows an authenticated route to the given roles.
func (m *Middlewares) RequireRoles(roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(errors.New("no authenticated actor on the request")))
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotResourceOwner(errors.New("role "+string(actor.Role)+" cannot access this route")))
		})
	}
}
