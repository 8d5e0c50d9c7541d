package middleware

import (
	"github.com/Parvathyammu/Payroll-Management/internal/authz"
	"github.com/Parvathyammu/Payroll-Management/internal/shared/apperror"
	"github.com/Parvathyammu/Payroll-Management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorize checks the caller's role (set by AuthMiddleware) against the
// casbin policy for one resource/action pair.
func Authorize(enforcer authz.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			zap.L().Named("middleware.authz").Error("enforce failed",
				zap.String("role", role),
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Error(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Message)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}
