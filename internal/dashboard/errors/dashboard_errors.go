package dashboarderrors

import (
	"net/http"

	"github.com/Parvathyammu/Payroll-Management/internal/shared/apperror"
)

var ErrSummaryNotFound = apperror.New(
	apperror.CodeNotFound,
	"No dashboard data found",
	http.StatusNotFound,
)
