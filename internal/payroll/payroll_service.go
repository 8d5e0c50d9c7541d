package payroll

import (
	"context"
	"strconv"
	"time"

	"github.com/Parvathyammu/Payroll-Management/internal/dashboard"
	payrollerrors "github.com/Parvathyammu/Payroll-Management/internal/payroll/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

// netSalary is the one business rule of this module. Client-submitted
// net_salary values never reach it.
func netSalary(basic, tax, deductions float64) float64 {
	return basic - tax - deductions
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	s.logger.Debug("create payroll requested",
		zap.Uint("employee_id", req.EmployeeID),
		zap.Float64("basic_salary", req.BasicSalary),
	)

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		s.logger.Warn("create payroll invalid payment_date",
			zap.String("payment_date", req.PaymentDate),
		)
		return PayrollResponse{}, err
	}

	p := &Payroll{
		EmployeeID:  req.EmployeeID,
		BasicSalary: req.BasicSalary,
		Tax:         req.Tax,
		Deductions:  req.Deductions,
		NetSalary:   netSalary(req.BasicSalary, req.Tax, req.Deductions),
		PaymentDate: paymentDate,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("create payroll success", zap.Uint("payroll_id", p.ID))

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	s.logger.Debug("get all payroll requested")
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all payroll failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	s.logger.Debug("get payroll by id requested", zap.String("payroll_id", id))

	payrollID, err := parsePayrollID(id)
	if err != nil {
		return PayrollResponse{}, err
	}

	p, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		s.logger.Error("get payroll by id failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	s.logger.Debug("update payroll requested",
		zap.String("payroll_id", id),
		zap.Uint("employee_id", req.EmployeeID),
	)

	payrollID, err := parsePayrollID(id)
	if err != nil {
		return PayrollResponse{}, err
	}

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		s.logger.Warn("update payroll invalid payment_date",
			zap.String("payment_date", req.PaymentDate),
		)
		return PayrollResponse{}, err
	}

	p, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		s.logger.Error("update payroll fetch existing failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	p.EmployeeID = req.EmployeeID
	p.BasicSalary = req.BasicSalary
	p.Tax = req.Tax
	p.Deductions = req.Deductions
	p.NetSalary = netSalary(req.BasicSalary, req.Tax, req.Deductions)
	p.PaymentDate = paymentDate

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update payroll persist failed", zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("update payroll success", zap.Uint("payroll_id", p.ID))

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete payroll requested", zap.String("payroll_id", id))

	payrollID, err := parsePayrollID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, payrollID)
	if err != nil {
		s.logger.Error("delete payroll failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return payrollerrors.ErrPayrollNotFound
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("delete payroll success", zap.Uint("payroll_id", payrollID))
	return nil
}

// Payroll totals feed the dashboard view.
func (s *service) invalidateDashboardCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboard.SummaryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate dashboard summary cache",
			zap.Error(err),
			zap.String("key", dashboard.SummaryCacheKey),
		)
	}
}

func parsePayrollID(id string) (uint, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, payrollerrors.ErrInvalidPayrollID
	}
	return uint(v), nil
}

func parsePaymentDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, payrollerrors.ErrInvalidDateFormat
	}
	return &d, nil
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		BasicSalary: p.BasicSalary,
		Tax:         p.Tax,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &d
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res
}
