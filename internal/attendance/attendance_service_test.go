package attendance_test

import (
	"context"
	"testing"

	"github.com/Parvathyammu/Payroll-Management/internal/attendance"
	attendanceerrors "github.com/Parvathyammu/Payroll-Management/internal/attendance/errors"
	"github.com/Parvathyammu/Payroll-Management/internal/dashboard"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	createFn  func(ctx context.Context, att *attendance.Attendance) error
	findAllFn func(ctx context.Context) ([]attendance.Attendance, error)
	findFn    func(ctx context.Context, id uint) (*attendance.Attendance, error)
	updateFn  func(ctx context.Context, att *attendance.Attendance) error
	deleteFn  func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	return f.createFn(ctx, att)
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.findAllFn(ctx)
}

func (f *fakeAttendanceRepo) FindByID(ctx context.Context, id uint) (*attendance.Attendance, error) {
	return f.findFn(ctx, id)
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att *attendance.Attendance) error {
	return f.updateFn(ctx, att)
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return f.deleteFn(ctx, id)
}

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty check times persist as nil", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(dashboard.SummaryCacheKey).SetVal(1)

		repo := &fakeAttendanceRepo{
			createFn: func(ctx context.Context, att *attendance.Attendance) error {
				assert.Nil(t, att.CheckIn)
				assert.Nil(t, att.CheckOut)
				att.ID = 1
				return nil
			},
		}

		svc := attendance.NewService(repo, rdb)

		resp, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID: 2,
			Date:       "2025-02-10",
			Status:     attendance.StatusAbsent,
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.CheckIn)
		assert.Nil(t, resp.CheckOut)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("present check times round trip", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(dashboard.SummaryCacheKey).SetVal(1)

		repo := &fakeAttendanceRepo{
			createFn: func(ctx context.Context, att *attendance.Attendance) error {
				att.ID = 2
				return nil
			},
		}

		svc := attendance.NewService(repo, rdb)

		resp, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID: 2,
			Date:       "2025-02-10",
			Status:     attendance.StatusPresent,
			CheckIn:    "09:00",
			CheckOut:   "17:30",
		})

		assert.NoError(t, err)
		assert.Equal(t, "09:00", *resp.CheckIn)
		assert.Equal(t, "17:30", *resp.CheckOut)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		svc := attendance.NewService(&fakeAttendanceRepo{}, rdb)

		_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID: 2,
			Date:       "10/02/2025",
			Status:     attendance.StatusPresent,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	})
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("clearing check_in writes nil", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(dashboard.SummaryCacheKey).SetVal(1)

		checkIn := "09:00"
		repo := &fakeAttendanceRepo{
			findFn: func(ctx context.Context, id uint) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: 3, EmployeeID: 2, CheckIn: &checkIn}, nil
			},
			updateFn: func(ctx context.Context, att *attendance.Attendance) error {
				assert.Nil(t, att.CheckIn)
				return nil
			},
		}

		svc := attendance.NewService(repo, rdb)

		resp, err := svc.Update(ctx, "3", attendance.UpdateAttendanceRequest{
			EmployeeID: 2,
			Date:       "2025-02-10",
			Status:     attendance.StatusAbsent,
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.CheckIn)
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()

		repo := &fakeAttendanceRepo{
			findFn: func(ctx context.Context, id uint) (*attendance.Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := attendance.NewService(repo, rdb)

		_, err := svc.Update(ctx, "404", attendance.UpdateAttendanceRequest{
			EmployeeID: 2,
			Date:       "2025-02-10",
			Status:     attendance.StatusLate,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()

		repo := &fakeAttendanceRepo{
			deleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 0, nil
			},
		}

		svc := attendance.NewService(repo, rdb)

		err := svc.Delete(ctx, "9")

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})

	t.Run("non numeric id rejected", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		svc := attendance.NewService(&fakeAttendanceRepo{}, rdb)

		err := svc.Delete(ctx, "oops")

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidAttendanceID)
	})
}
