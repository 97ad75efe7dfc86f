package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/internal/http/handlers"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
)

// RouterDeps collects everything BuildRouter wires together.
type RouterDeps struct {
	Auth       *handlers.AuthHandlers
	Attendance *handlers.AttendanceHandlers
	Tasks      *handlers.TaskHandlers
	Reports    *handlers.ReportHandlers
	Policies   *handlers.PolicyHandlers
	JWT        *middleware.AuthMW
	Casbin     middleware.CasbinMiddleware
	// PhotoDir, when set, is served read-only under /uploads.
	PhotoDir string
}

func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if d.PhotoDir != "" {
		r.Static("/uploads", d.PhotoDir)
	}

	auth := r.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/forgot-password", d.Auth.ForgotPassword)
	auth.POST("/reset-password", d.Auth.ResetPassword)

	// Fence parameters are public so clients can pre-validate before login.
	r.GET("/attendance/office-config", d.Attendance.OfficeConfig)

	v := r.Group("/").Use(d.JWT.WithJWT(), d.Casbin.Enforce())
	v.GET("/auth/me", d.Auth.Me)
	v.POST("/auth/logout", d.Auth.Logout)
	v.PUT("/auth/profile", d.Auth.UpdateProfile)
	v.POST("/auth/change-password", d.Auth.ChangePassword)
	v.POST("/auth/change-email", d.Auth.RequestEmailChange)
	v.POST("/auth/change-email/confirm", d.Auth.ConfirmEmailChange)

	v.POST("/attendance/mark", d.Attendance.Mark)
	v.POST("/attendance/login", d.Attendance.Login)
	v.POST("/attendance/logout", d.Attendance.Logout)
	v.GET("/attendance/history", d.Attendance.History)

	v.GET("/tasks", d.Tasks.List)
	v.GET("/tasks/:id", d.Tasks.Get)
	v.POST("/tasks/:id/photos", d.Tasks.AddPhotos)
	v.POST("/tasks/:id/photos/upload", d.Tasks.UploadPhotos)
	v.POST("/tasks/:id/transition", d.Tasks.Transition)
	v.POST("/tasks/:id/reached", d.Tasks.MarkReached)

	adm := r.Group("/admin").Use(d.JWT.WithJWT(), d.Casbin.Enforce())
	adm.GET("/attendance", d.Attendance.All)
	adm.GET("/reports/monthly", d.Reports.Monthly)
	adm.GET("/reports/monthly.csv", d.Reports.MonthlyCSV)
	adm.POST("/tasks", d.Tasks.Create)
	adm.PATCH("/tasks/:id", d.Tasks.Patch)
	adm.DELETE("/tasks/:id", d.Tasks.Delete)
	adm.POST("/tasks/:id/verify", d.Tasks.Verify)
	adm.GET("/tasks/summary", d.Tasks.Summary)
	adm.GET("/policies", d.Policies.List)
	adm.POST("/policies", d.Policies.Add)
	adm.DELETE("/policies", d.Policies.Remove)

	return r
}
