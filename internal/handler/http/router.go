package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teppen-ops/venue-backend/internal/handler/http/middleware"
	"github.com/teppen-ops/venue-backend/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	dailyHandler DailyHandler,
	monthlyHandler MonthlyHandler,
	yearlyHandler YearlyHandler,
	performanceHandler PerformanceHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "venue-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/staffs", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)
				r.Post("/reassign-id", staffHandler.ReassignID)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", staffHandler.Rename)
					r.Delete("/", staffHandler.Deactivate)
					r.Get("/performance", performanceHandler.GetMonthly)
				})
			})

			r.Route("/daily", func(r chi.Router) {
				r.Get("/", dailyHandler.GetDay)
				r.Post("/", dailyHandler.Save)
				r.Post("/preview", dailyHandler.Preview)
				r.Get("/expense-suggestions", dailyHandler.SuggestExpenseNames)
				r.Delete("/expenses/{id}", dailyHandler.DeleteExpense)
				r.Delete("/results/{staffId}", dailyHandler.DeleteStaffEntry)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Route("/monthly", func(r chi.Router) {
					r.Get("/", monthlyHandler.GetReport)
					r.Post("/", monthlyHandler.Save)
					r.Get("/export", monthlyHandler.Export)
				})
				r.Route("/yearly", func(r chi.Router) {
					r.Get("/", yearlyHandler.GetReport)
					r.Post("/", yearlyHandler.Save)
				})
			})
		})
	})
	return r
}
