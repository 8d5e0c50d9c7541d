package auth

import (
	"github.com/Parvathyammu/Payroll-Management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth routes are public; brute force is throttled per client IP.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/register",
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)

		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)

		authGroup.POST("/refresh",
			middleware.RateLimitByIP(1, 5),
			handler.Refresh,
		)
	}
}
