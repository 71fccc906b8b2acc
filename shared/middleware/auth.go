package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cosmiccommons/c3site/shared/domain"
	jwt_internal "github.com/cosmiccommons/c3site/shared/jwt"
	"github.com/cosmiccommons/c3site/shared/logger"
	"github.com/cosmiccommons/c3site/shared/utils"
)

// Key to store the principal in the request context
type key int

const PrincipalKey key = 0

var errNoToken = errors.New("no token")

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// AdminOnly returns middleware that requires a valid token with the admin claim.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := a.extractPrincipal(r)
			if err != nil {
				if errors.Is(err, errNoToken) {
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !p.Admin {
				logger.Log.Warn("non-admin token on admin route", "subject", p.Subject, "path", r.URL.Path)
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractPrincipal reads the token from the accessToken cookie, falling back
// to an Authorization: Bearer header.
func (a *Auth) extractPrincipal(r *http.Request) (*domain.Principal, error) {
	var tokenString string
	if accessCookie, err := r.Cookie(accessTokenCookie); err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}
	if tokenString == "" {
		return nil, errNoToken
	}
	return a.jwtService.DecodeToken(tokenString)
}

func GetPrincipalFromContext(r *http.Request) *domain.Principal {
	p, ok := r.Context().Value(PrincipalKey).(*domain.Principal)
	if !ok {
		return nil
	}
	return p
}
