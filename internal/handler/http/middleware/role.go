package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplekit/leave-backend-go/internal/domain/role"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
)

func claimedRole(r *http.Request) role.Name {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	name, _ := claims["role"].(string)
	return role.Name(name)
}

// ApproverOnly limits a route to managers and admins.
func ApproverOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !claimedRole(r).CanApprove() {
			response.Forbidden(w, "Manager or admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly limits a route to admins.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !claimedRole(r).IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
