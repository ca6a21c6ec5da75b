package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-portal/internal/attendance"
	"github.com/frahmantamala/employee-portal/internal/auth"
	"github.com/frahmantamala/employee-portal/internal/dashboard"
	"github.com/frahmantamala/employee-portal/internal/employee"
	"github.com/frahmantamala/employee-portal/internal/salary"
	"github.com/frahmantamala/employee-portal/internal/transport/middleware"
	"github.com/frahmantamala/employee-portal/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires every portal route onto the router. All /admin
// routes sit behind both the auth and the admin gate; /attendance and the
// staff dashboard only require a valid session.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	attendanceHandler *attendance.Handler,
	salaryHandler *salary.Handler,
	dashboardHandler *dashboard.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware())

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public auth routes
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
		r.Get("/logout", authHandler.Logout)

		// Everything else requires a session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.RequireAuth)

			pr.Post("/attendance", attendanceHandler.Mark)
			pr.Get("/staff_dashboard", dashboardHandler.Staff)

			// Admin routes behind the stricter gate
			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)

				ar.Get("/dashboard", dashboardHandler.Admin)

				ar.Route("/employees", func(er chi.Router) {
					er.Get("/", employeeHandler.List)
					er.Post("/", employeeHandler.Create)
					er.Get("/{emp_id}", employeeHandler.Get)
					er.Put("/{emp_id}", employeeHandler.Update)
					er.Delete("/{emp_id}", employeeHandler.Delete)
				})

				ar.Get("/attendance", attendanceHandler.Report)
				ar.Get("/salary", salaryHandler.Report)
			})
		})
	})
}
