package middleware

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/cmlabs-hris/attendance-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/jwt"
)

// RequireRoles lets the request through only when its role claim is one of roles
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := jwt.RoleFromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if !slices.Contains(roles, role) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: role '%s' is not allowed", role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
