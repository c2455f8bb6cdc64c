package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplekit/leave-backend-go/internal/config"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/middleware"
	"github.com/peoplekit/leave-backend-go/internal/handler/http/response"
	"github.com/peoplekit/leave-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	roleHandler RoleHandler,
	managerHandler ManagerHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Delete("/", leaveHandler.Cancel)
				r.Get("/status/{userID}", leaveHandler.GetStatus)
				r.Get("/remaining/{userID}", leaveHandler.GetBalance)

				// Manager or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Patch("/approve", leaveHandler.Approve)
					r.Patch("/reject", leaveHandler.Reject)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.GetByID)
				r.Get("/email/{email}", userHandler.GetByEmail)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", roleHandler.List)
				r.Get("/{id}", roleHandler.GetByID)
			})

			r.Route("/managers", func(r chi.Router) {
				r.Get("/", managerHandler.List)
				r.Get("/user/{userID}", managerHandler.GetByUserID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", managerHandler.Create)
					r.Put("/", managerHandler.Update)
					r.Delete("/{id}", managerHandler.Delete)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
