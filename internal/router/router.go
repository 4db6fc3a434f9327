package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Dharmub376/Digital-Chunab/internal/handler"
	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Voting  *handler.VotingHandler
	Student *handler.StudentHandler
	Admin   *handler.AdminHandler
	Results *handler.ResultsHandler
	Export  *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Deps are the collaborators the middleware stack needs.
type Deps struct {
	JWTSecret   string
	CORSOrigins string
	Admins      *repository.AdminRepo
	Students    *repository.StudentRepo
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, d Deps) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(d.CORSOrigins))

	// Probes and metrics (no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", h.Auth.Login, middleware.NewLoginRateLimiter().Handler())

	authenticate := middleware.Authenticate(d.JWTSecret, d.Admins, d.Students)

	// Voting (students only)
	voting := api.Group("/voting", authenticate, middleware.RequireStudent())
	voting.Post("/vote", h.Voting.Cast, middleware.NewVoteRateLimiter().Handler())

	// Student views
	student := api.Group("/student", authenticate, middleware.RequireStudent())
	student.Get("/positions", h.Student.Positions)
	student.Get("/dashboard", h.Student.Dashboard)
	student.Get("/profile", h.Student.Profile)

	// Admin views
	admin := api.Group("/admin", authenticate, middleware.RequireAdmin())
	admin.Get("/dashboard", h.Admin.Dashboard)

	admin.Get("/students", h.Admin.ListStudents)
	admin.Post("/students", h.Admin.CreateStudent)
	admin.Put("/students/:id", h.Admin.UpdateStudent)
	admin.Delete("/students/:id", h.Admin.DeleteStudent)

	admin.Get("/positions", h.Admin.ListPositions)
	admin.Post("/positions", h.Admin.CreatePosition)
	admin.Put("/positions/:id", h.Admin.UpdatePosition)
	admin.Delete("/positions/:id", h.Admin.DeletePosition)

	admin.Get("/candidates", h.Admin.ListCandidates)
	admin.Post("/candidates", h.Admin.CreateCandidate)
	admin.Put("/candidates/:id", h.Admin.UpdateCandidate)
	admin.Delete("/candidates/:id", h.Admin.DeleteCandidate)

	admin.Get("/results", h.Results.Results)
	admin.Get("/results/export/csv", h.Export.ResultsCSV, middleware.NewExportRateLimiter().Handler())

	admin.Get("/activity", h.Admin.Activity)
}
