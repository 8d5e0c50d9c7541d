package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("/summary",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(enforcer, "dashboard", "read"),
			handler.GetSummary,
		)
	}
}
