package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	EmployeeReport(ctx context.Context) ([]EmployeeReportRow, error)
	PayrollReport(ctx context.Context) ([]PayrollReportRow, error)
	AttendanceReport(ctx context.Context) ([]AttendanceReportRow, error)
	LeaveReport(ctx context.Context) ([]LeaveReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) EmployeeReport(ctx context.Context) ([]EmployeeReportRow, error) {
	var rows []EmployeeReportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id, e.first_name, e.last_name, e.email, e.position,
		       e.department, e.date_joined::text AS date_joined,
		       p.net_salary AS salary
		FROM employees e
		LEFT JOIN payroll p ON p.employee_id = e.id
		ORDER BY e.id ASC`).Scan(&rows).Error
	return rows, err
}

func (r *repository) PayrollReport(ctx context.Context) ([]PayrollReportRow, error) {
	var rows []PayrollReportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, employee_id, basic_salary, tax, deductions, net_salary,
		       payment_date::text AS payment_date
		FROM payroll
		ORDER BY id ASC`).Scan(&rows).Error
	return rows, err
}

func (r *repository) AttendanceReport(ctx context.Context) ([]AttendanceReportRow, error) {
	var rows []AttendanceReportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, employee_id, date::text AS date, status
		FROM attendance
		ORDER BY id ASC`).Scan(&rows).Error
	return rows, err
}

func (r *repository) LeaveReport(ctx context.Context) ([]LeaveReportRow, error) {
	var rows []LeaveReportRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, employee_id, start_date::text AS start_date,
		       end_date::text AS end_date, leave_type, status, reason
		FROM leaves
		ORDER BY id ASC`).Scan(&rows).Error
	return rows, err
}
