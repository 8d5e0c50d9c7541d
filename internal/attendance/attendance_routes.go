package attendance

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
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "attendance", "read"),
			handler.GetAll,
		)

		attendances.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "attendance", "read"),
			handler.GetByID,
		)

		attendances.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "attendance", "create"),
			handler.Create,
		)

		attendances.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "attendance", "update"),
			handler.Update,
		)

		attendances.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(enforcer, "attendance", "delete"),
			handler.Delete,
		)
	}
}
