package report

import (
	"context"

	reporterrors "github.com/Parvathyammu/Payroll-Management/internal/report/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, reportType string) (interface{}, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Generate(ctx context.Context, reportType string) (interface{}, error) {
	s.logger.Debug("report requested", zap.String("report_type", reportType))

	var (
		rows interface{}
		err  error
	)
	switch ReportType(reportType) {
	case TypeEmployee:
		rows, err = s.repo.EmployeeReport(ctx)
	case TypePayroll:
		rows, err = s.repo.PayrollReport(ctx)
	case TypeAttendance:
		rows, err = s.repo.AttendanceReport(ctx)
	case TypeLeave:
		rows, err = s.repo.LeaveReport(ctx)
	default:
		s.logger.Warn("report type rejected", zap.String("report_type", reportType))
		return nil, reporterrors.ErrUnknownReportType
	}

	if err != nil {
		s.logger.Error("report query failed",
			zap.String("report_type", reportType),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("report generated", zap.String("report_type", reportType))
	return rows, nil
}
