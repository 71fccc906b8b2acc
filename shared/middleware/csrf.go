package middleware

import (
	"net/http"

	"github.com/cosmiccommons/c3site/shared/csrf"
	"github.com/cosmiccommons/c3site/shared/logger"
)

const accessTokenCookie = "accessToken"

// CSRFProtect guards cookie authenticated writes with a double-submit token.
// Safe requests get a csrf_token cookie when missing and see the token in the
// X-CSRF-Token response header. Unsafe requests carrying the access cookie
// must echo the cookie value in the X-CSRF-Token request header. Bearer
// clients are not affected.
func CSRFProtect(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(csrf.CookieName)
			hasToken := err == nil && cookie.Value != ""

			if isSafeMethod(r.Method) {
				token := ""
				if hasToken {
					token = cookie.Value
				} else {
					token, err = csrf.GenerateToken()
					if err != nil {
						logger.Log.Error("failed to generate CSRF token", "error", err)
						http.Error(w, "Internal server error", http.StatusInternalServerError)
						return
					}
					http.SetCookie(w, &http.Cookie{
						Name:     csrf.CookieName,
						Value:    token,
						Path:     "/",
						Secure:   secureCookies,
						SameSite: http.SameSiteStrictMode,
						MaxAge:   86400,
					})
				}
				w.Header().Set(csrf.HeaderName, token)
				next.ServeHTTP(w, r)
				return
			}

			if _, err := r.Cookie(accessTokenCookie); err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if !hasToken || !csrf.ValidateToken(cookie.Value, r.Header.Get(csrf.HeaderName)) {
				logger.Log.Warn("csrf token mismatch", "path", r.URL.Path)
				http.Error(w, "Invalid CSRF token", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
