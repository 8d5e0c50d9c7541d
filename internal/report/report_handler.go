package report

import (
	"net/http"

	"github.com/Parvathyammu/Payroll-Management/internal/shared/apperror"
	"github.com/Parvathyammu/Payroll-Management/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Generate(c *gin.Context) {
	reportType := c.Query("type")
	h.logger.Debug("http generate report", zap.String("report_type", reportType))

	rows, err := h.service.Generate(c.Request.Context(), reportType)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("report request failed",
			zap.String("report_type", reportType),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.JSON(c, http.StatusOK, rows)
}
