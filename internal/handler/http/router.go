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

	"github.com/salesops-id/salesops-backend-go/internal/handler/http/middleware"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Slik       SlikHandler
	Report     ReportHandler
	Lead       LeadHandler
	Profile    ProfileHandler
	Geocode    GeocodeHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salesops-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/leave", h.Attendance.SubmitLeave)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/history", h.Attendance.History)
			})

			r.Route("/sliks", func(r chi.Router) {
				r.Post("/extract", h.Slik.ExtractFromImage)
				r.Post("/normalize", h.Slik.NormalizeJSON)
				r.Post("/", h.Slik.Finalize)
				r.Get("/", h.Slik.ListMine)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Route("/leads", func(r chi.Router) {
					r.Post("/", h.Report.CreateLeadReport)
					r.Get("/", h.Report.ListLeadReports)
				})
				r.Route("/ads", func(r chi.Router) {
					r.Post("/", h.Report.CreateAdReport)
					r.Get("/", h.Report.ListAdReports)
				})
				r.Route("/whatsapp", func(r chi.Router) {
					r.Post("/daily", h.Report.DailyWhatsAppMessage)
					r.Post("/ads-recap", h.Report.AdsRecapWhatsAppMessage)
				})
			})

			r.Route("/leads", func(r chi.Router) {
				r.Post("/", h.Lead.Create)
				r.Get("/", h.Lead.List)
				r.Route("/{leadID}", func(r chi.Router) {
					r.Get("/", h.Lead.Get)
					r.Put("/", h.Lead.Update)
					r.Delete("/", h.Lead.Delete)
				})
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Get("/me", h.Profile.Me)
				r.Put("/me", h.Profile.Update)
				r.Put("/me/theme", h.Profile.UpdateTheme)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Profile.List)
				})
			})

			r.Get("/geocode/reverse", h.Geocode.Reverse)
		})
	})
	return r
}
