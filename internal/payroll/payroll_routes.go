package payroll

import (
	"github.com/Parvathyammu/Payroll-Management/internal/authz"
	"github.com/Parvathyammu/Payroll-Management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer authz.Enforcer,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "payroll", "read"),
			handler.GetAll,
		)

		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "payroll", "read"),
			handler.GetByID,
		)

		payrolls.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "payroll", "create"),
			handler.Create,
		)

		payrolls.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "payroll", "update"),
			handler.Update,
		)

		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(enforcer, "payroll", "delete"),
			handler.Delete,
		)
	}
}
