package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teppen-ops/venue-backend/internal/config"
	appHTTP "github.com/teppen-ops/venue-backend/internal/handler/http"
	"github.com/teppen-ops/venue-backend/internal/pkg/cron"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
	"github.com/teppen-ops/venue-backend/internal/pkg/jwt"
	"github.com/teppen-ops/venue-backend/internal/pkg/oauth"
	"github.com/teppen-ops/venue-backend/internal/repository/postgresql"
	serviceAuth "github.com/teppen-ops/venue-backend/internal/service/auth"
	dailyService "github.com/teppen-ops/venue-backend/internal/service/daily"
	monthlyService "github.com/teppen-ops/venue-backend/internal/service/monthly"
	performanceService "github.com/teppen-ops/venue-backend/internal/service/performance"
	staffService "github.com/teppen-ops/venue-backend/internal/service/staff"
	yearlyService "github.com/teppen-ops/venue-backend/internal/service/yearly"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	operatorRepo := postgresql.NewOperatorRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	staffResultRepo := postgresql.NewStaffResultRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	monthlyExpenseRepo := postgresql.NewMonthlyExpenseRepository(db)
	memoRepo := postgresql.NewMemoRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := serviceAuth.NewAuthService(operatorRepo, refreshTokenRepo, JWTService, googleService)
	staffSvc := staffService.NewStaffService(staffRepo)
	dailySvc := dailyService.NewDailyService(db, staffResultRepo, expenseRepo, dailyReportRepo)
	monthlySvc := monthlyService.NewMonthlyService(dailyReportRepo, staffResultRepo, expenseRepo, monthlyExpenseRepo, memoRepo)
	yearlySvc := yearlyService.NewYearlyService(dailyReportRepo, staffResultRepo, expenseRepo, monthlyExpenseRepo, memoRepo, staffRepo)
	performanceSvc := performanceService.NewPerformanceService(staffResultRepo, staffRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	dailyHandler := appHTTP.NewDailyHandler(dailySvc)
	monthlyHandler := appHTTP.NewMonthlyHandler(monthlySvc)
	yearlyHandler := appHTTP.NewYearlyHandler(yearlySvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		staffHandler,
		dailyHandler,
		monthlyHandler,
		yearlyHandler,
		performanceHandler,
		cfg.App.FrontendURL,
	)

	scheduler := cron.NewScheduler()
	if cfg.Rollup.Enabled {
		lookback := cfg.Rollup.Lookback
		scheduler.AddJob("rollup-reconcile", cfg.Rollup.Interval, func(ctx context.Context) error {
			to := time.Now().Format("2006-01-02")
			from := time.Now().AddDate(0, 0, -lookback).Format("2006-01-02")
			n, err := dailySvc.RecomputeRange(ctx, from, to)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.Info("Rollups reconciled", "count", n, "from", from, "to", to)
			}
			return nil
		})
	}
	scheduler.AddJob("refresh-token-cleanup", 24*time.Hour, func(ctx context.Context) error {
		n, err := refreshTokenRepo.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			slog.Info("Expired refresh tokens deleted", "count", n)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
