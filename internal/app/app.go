package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/config"
	"github.com/shreyanshTechz/attendance-backend/internal/geo"
	httpx "github.com/shreyanshTechz/attendance-backend/internal/http"
	"github.com/shreyanshTechz/attendance-backend/internal/http/handlers"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/auth"
	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/database"
	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/notifications"
	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/repositories"
	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/storage"
	"github.com/shreyanshTechz/attendance-backend/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	photoStore, err := storage.NewLocalPhotoStore(cfg.PhotoDir, "/uploads")
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	attendanceRepo := repositories.NewAttendanceRepository(gdb)
	taskRepo := repositories.NewTaskRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.RefreshTTL)

	// Services
	otpSvc := services.NewOTPService(notificationSvc, rdb, services.OTPConfig{
		Length:       cfg.OTP_Length,
		TTL:          cfg.OTP_TTL,
		MaxAttempts:  cfg.OTP_MaxAttempts,
		ResendWindow: cfg.OTP_ResendWindow,
	})
	policySvc := services.NewPolicyService(cas.E)
	authSvc := services.NewAuthService(
		userRepo, sessionRepo, passwordSvc, tokenSvc, otpSvc,
		cfg.AdminEmails, cfg.AccessTTL, cfg.RefreshTTL,
	)

	fencePolicy := geo.PolicyHaversine
	if cfg.Office.LegacyBox {
		fencePolicy = geo.PolicyBox
	}
	fence := geo.Fence{
		Reference: domain.Coordinate{
			Latitude:  cfg.Office.Latitude,
			Longitude: cfg.Office.Longitude,
		},
		ToleranceKm: cfg.Office.RadiusKm,
		Policy:      fencePolicy,
	}
	attendanceSvc := services.NewAttendanceService(attendanceRepo, fence)
	taskSvc := services.NewTaskService(taskRepo, cfg.Office.ArrivalRadiusM)
	reportSvc := services.NewReportService(userRepo, attendanceRepo)

	r := httpx.BuildRouter(httpx.RouterDeps{
		Auth:       handlers.NewAuthHandlers(authSvc),
		Attendance: handlers.NewAttendanceHandlers(attendanceSvc, cfg.Office),
		Tasks:      handlers.NewTaskHandlers(taskSvc, photoStore),
		Reports:    handlers.NewReportHandlers(reportSvc),
		Policies:   handlers.NewPolicyHandlers(policySvc),
		JWT:        middleware.NewAuthMW(tokenSvc, sessionRepo),
		Casbin:     middleware.NewCasbinMW(cas.E),
		PhotoDir:   photoStore.Dir(),
	})

	seedPolicies(cas)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on an empty store.
func seedPolicies(cas *auth.CasbinService) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) > 0 {
		return
	}
	cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PATCH|PUT|DELETE)")
	cas.E.AddPolicy("role_admin", "/auth/*", "(GET|POST|PUT)")
	cas.E.AddPolicy("role_admin", "/attendance/*", "(GET|POST)")
	cas.E.AddPolicy("role_admin", "/tasks*", "(GET|POST)")
	cas.E.AddPolicy("role_employee", "/auth/*", "(GET|POST|PUT)")
	cas.E.AddPolicy("role_employee", "/attendance/*", "(GET|POST)")
	cas.E.AddPolicy("role_employee", "/tasks*", "(GET|POST)")
	_ = cas.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
