package middlewares

import (
	"net/http"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"

	"knscribe-service/internal/consts"
	"knscribe-service/internal/service/auth"
)

// Auth builds a middleware that resolves the bearer token to an existing
// user identity before any pipeline work starts.
func Auth(tokens *auth.TokenManager) func(r *ghttp.Request) {
	return func(r *ghttp.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			rejectUnauthorized(r, "authentication token required")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			rejectUnauthorized(r, "authentication token required")
			return
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			rejectUnauthorized(r, "invalid or expired token")
			return
		}
		// Tokens outlive accounts; the identity must still exist.
		if _, err := auth.GetUser(r.Context(), userID); err != nil {
			rejectUnauthorized(r, "invalid or expired token")
			return
		}

		r.SetCtxVar(consts.CtxUserID, userID)
		r.Middleware.Next()
	}
}

func rejectUnauthorized(r *ghttp.Request, message string) {
	r.Response.WriteHeader(http.StatusUnauthorized)
	r.Response.WriteJson(g.Map{
		"success": false,
		"message": message,
	})
}
