package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/config"
	"github.com/cmlabs-hris/attendance-core-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-core-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-core-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-core-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-core-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-core-go/internal/service/employee"
	sysconfigService "github.com/cmlabs-hris/attendance-core-go/internal/service/sysconfig"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	systemConfigRepo := postgresql.NewSystemConfigRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	headcountRepo := postgresql.NewHeadcountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	configStore := sysconfigService.NewConfigStore(systemConfigRepo, sysconfigService.NewCache(cfg.ConfigCache.TTL))
	systemConfigSvc := sysconfigService.NewSystemConfigService(configStore, systemConfigRepo, fixtures.GetDefaultSystemConfigs())
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, configStore)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, headcountRepo, configStore)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, JWTService, appHTTP.Handlers{
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		SystemConfig: appHTTP.NewSystemConfigHandler(systemConfigSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
	})

	scheduler := cron.NewScheduler()
	if cfg.Jobs.StatusStampInterval > 0 {
		cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler, cfg.Jobs.StatusStampInterval)
	}
	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
}
