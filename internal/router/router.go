package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/config"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/handlers"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/metrics"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/middleware"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/repository/postgres"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/schedule"
	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) (http.Handler, *service.ScheduleService) {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(cfg))

	// Health + metrics
	r.Get("/healthz", handlers.Health())
	r.Method("GET", "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// Repos + services
	complaintRepo := postgres.NewComplaintRepo(db)
	hearingRepo := postgres.NewHearingRepo(db)
	companyRepo := postgres.NewCompanyRepo(db)

	compiler := schedule.NewCompiler(
		schedule.NewCalendar(cfg.Holidays),
		schedule.NewGrid(cfg.TimeSlots, cfg.SlotCapacity),
	)
	schedSvc := service.NewScheduleService(log, complaintRepo, hearingRepo, compiler)
	authSvc := service.NewAuthService(cfg.AdminUser, cfg.AdminPassHash, cfg.SessionSecret)

	ch := handlers.NewComplaintHTTP(complaintRepo)
	sh := handlers.NewScheduleHTTP(schedSvc)
	ah := handlers.NewAuthHTTP(authSvc)
	rh := handlers.NewReportsHTTP(complaintRepo, schedSvc)
	coh := handlers.NewCompanyHTTP(companyRepo, log)

	// Public: intake form + directory
	r.Get("/api/companies", coh.List())
	r.Post("/api/complaints", ch.Create())

	// Auth
	r.Post("/api/auth/login", ah.Login())
	r.Post("/api/auth/logout", ah.Logout())
	r.Get("/api/auth/me", ah.Me())

	// Back office
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles("admin"))

		r.Get("/api/complaints", ch.List())
		r.Get("/api/complaints/{id}", ch.Get())
		r.Get("/api/reports/summary", rh.Summary())

		r.Route("/api/schedule", func(r chi.Router) {
			r.Post("/refresh", sh.Refresh())
			r.Get("/pending", sh.Pending())
			r.Get("/{date}", sh.Day())
			r.Get("/{date}/print", sh.Print())
		})
		r.Post("/api/hearings", sh.SaveHearing())
		r.Delete("/api/hearings/{id}", sh.DeleteHearing())
	})

	return r, schedSvc
}
