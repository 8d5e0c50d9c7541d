package app

import (
	"database/sql"

	"github.com/Parvathyammu/Payroll-Management/internal/attendance"
	"github.com/Parvathyammu/Payroll-Management/internal/auth"
	"github.com/Parvathyammu/Payroll-Management/internal/authz"
	"github.com/Parvathyammu/Payroll-Management/internal/dashboard"
	"github.com/Parvathyammu/Payroll-Management/internal/employee"
	"github.com/Parvathyammu/Payroll-Management/internal/leave"
	"github.com/Parvathyammu/Payroll-Management/internal/messaging/kafka"
	"github.com/Parvathyammu/Payroll-Management/internal/middleware"
	"github.com/Parvathyammu/Payroll-Management/internal/payroll"
	"github.com/Parvathyammu/Payroll-Management/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	payrollService := payroll.NewService(payrollRepo, rdb)
	attendanceService := attendance.NewService(attendanceRepo, rdb)
	leaveService := leave.NewService(leaveRepo)
	reportService := report.NewService(reportRepo)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandler(payrollService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, enforcer, logger)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, logger)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, logger)
		leave.RegisterRoutes(api, leaveHandler, enforcer, logger)
		report.RegisterRoutes(api, reportHandler, enforcer, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, enforcer, logger)
	}

	return nil
}
