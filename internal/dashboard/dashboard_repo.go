package dashboard

import (
	"context"

	"gorm.io/gorm"
)

// Summary mirrors one row of the dashboard_summary view. The view
// recomputes from employees, payroll and attendance on every read.
type Summary struct {
	TotalEmployees int64   `gorm:"column:total_employees"`
	TotalPayroll   float64 `gorm:"column:total_payroll"`
	AttendanceRate float64 `gorm:"column:attendance_rate"`
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	FetchSummary(ctx context.Context) (*Summary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FetchSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	err := r.db.WithContext(ctx).
		Table("dashboard_summary").
		Take(&summary).Error
	return &summary, err
}
