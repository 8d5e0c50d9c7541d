package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Parvathyammu/Payroll-Management/internal/report"
	reporterrors "github.com/Parvathyammu/Payroll-Management/internal/report/errors"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepo struct {
	employeeFn   func(ctx context.Context) ([]report.EmployeeReportRow, error)
	payrollFn    func(ctx context.Context) ([]report.PayrollReportRow, error)
	attendanceFn func(ctx context.Context) ([]report.AttendanceReportRow, error)
	leaveFn      func(ctx context.Context) ([]report.LeaveReportRow, error)
	calls        int
}

func (f *fakeReportRepo) EmployeeReport(ctx context.Context) ([]report.EmployeeReportRow, error) {
	f.calls++
	return f.employeeFn(ctx)
}

func (f *fakeReportRepo) PayrollReport(ctx context.Context) ([]report.PayrollReportRow, error) {
	f.calls++
	return f.payrollFn(ctx)
}

func (f *fakeReportRepo) AttendanceReport(ctx context.Context) ([]report.AttendanceReportRow, error) {
	f.calls++
	return f.attendanceFn(ctx)
}

func (f *fakeReportRepo) LeaveReport(ctx context.Context) ([]report.LeaveReportRow, error) {
	f.calls++
	return f.leaveFn(ctx)
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type rejected without store access", func(t *testing.T) {
		repo := &fakeReportRepo{}
		svc := report.NewService(repo)

		_, err := svc.Generate(ctx, "finance")

		assert.ErrorIs(t, err, reporterrors.ErrUnknownReportType)
		assert.Zero(t, repo.calls)
	})

	t.Run("empty type rejected too", func(t *testing.T) {
		repo := &fakeReportRepo{}
		svc := report.NewService(repo)

		_, err := svc.Generate(ctx, "")

		assert.ErrorIs(t, err, reporterrors.ErrUnknownReportType)
		assert.Zero(t, repo.calls)
	})

	t.Run("employee type joins net salary", func(t *testing.T) {
		salary := 5250.0
		repo := &fakeReportRepo{
			employeeFn: func(ctx context.Context) ([]report.EmployeeReportRow, error) {
				return []report.EmployeeReportRow{
					{ID: 1, FirstName: "Ana", LastName: "Silva", Salary: &salary},
					{ID: 2, FirstName: "Ben", LastName: "Okafor", Salary: nil},
				}, nil
			},
		}
		svc := report.NewService(repo)

		rows, err := svc.Generate(ctx, "employee")

		assert.NoError(t, err)
		got, ok := rows.([]report.EmployeeReportRow)
		assert.True(t, ok)
		assert.Len(t, got, 2)
		assert.Equal(t, 5250.0, *got[0].Salary)
		assert.Nil(t, got[1].Salary)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("payroll type dispatches to payroll rows", func(t *testing.T) {
		repo := &fakeReportRepo{
			payrollFn: func(ctx context.Context) ([]report.PayrollReportRow, error) {
				return []report.PayrollReportRow{
					{ID: 1, EmployeeID: 4, BasicSalary: 6000, Tax: 600, Deductions: 150, NetSalary: 5250},
				}, nil
			},
		}
		svc := report.NewService(repo)

		rows, err := svc.Generate(ctx, "payroll")

		assert.NoError(t, err)
		got, ok := rows.([]report.PayrollReportRow)
		assert.True(t, ok)
		assert.Equal(t, 5250.0, got[0].NetSalary)
	})

	t.Run("attendance type dispatches to attendance rows", func(t *testing.T) {
		repo := &fakeReportRepo{
			attendanceFn: func(ctx context.Context) ([]report.AttendanceReportRow, error) {
				return []report.AttendanceReportRow{
					{ID: 1, EmployeeID: 4, Date: "2025-02-10", Status: "Present"},
				}, nil
			},
		}
		svc := report.NewService(repo)

		rows, err := svc.Generate(ctx, "attendance")

		assert.NoError(t, err)
		_, ok := rows.([]report.AttendanceReportRow)
		assert.True(t, ok)
	})

	t.Run("leave type dispatches to leave rows", func(t *testing.T) {
		repo := &fakeReportRepo{
			leaveFn: func(ctx context.Context) ([]report.LeaveReportRow, error) {
				return []report.LeaveReportRow{
					{ID: 1, EmployeeID: 4, LeaveType: "Annual", Status: "Pending"},
				}, nil
			},
		}
		svc := report.NewService(repo)

		rows, err := svc.Generate(ctx, "leave")

		assert.NoError(t, err)
		_, ok := rows.([]report.LeaveReportRow)
		assert.True(t, ok)
	})

	t.Run("query failure surfaces", func(t *testing.T) {
		repo := &fakeReportRepo{
			employeeFn: func(ctx context.Context) ([]report.EmployeeReportRow, error) {
				return nil, errors.New("db gone")
			},
		}
		svc := report.NewService(repo)

		_, err := svc.Generate(ctx, "employee")

		assert.Error(t, err)
	})
}
