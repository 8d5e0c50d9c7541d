package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "leave", "read"),
			handler.GetAll,
		)

		leaves.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "leave", "read"),
			handler.GetByID,
		)

		leaves.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "leave", "create"),
			handler.Create,
		)

		leaves.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "leave", "update"),
			handler.UpdateStatus,
		)

		leaves.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(enforcer, "leave", "delete"),
			handler.Delete,
		)
	}
}
