package reporterrors

import (
	"net/http"

	"github.com/Parvathyammu/Payroll-Management/internal/shared/apperror"
)

var ErrUnknownReportType = apperror.New(
	apperror.CodeInvalidInput,
	"Unknown report type",
	http.StatusBadRequest,
)
