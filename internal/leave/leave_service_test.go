package leave_test

import (
	"context"
	"testing"

	"github.com/Parvathyammu/Payroll-Management/internal/leave"
	leaveerrors "github.com/Parvathyammu/Payroll-Management/internal/leave/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepo struct {
	createFn  func(ctx context.Context, lv *leave.Leave) error
	findAllFn func(ctx context.Context) ([]leave.Leave, error)
	findFn    func(ctx context.Context, id uint) (*leave.Leave, error)
	updateFn  func(ctx context.Context, lv *leave.Leave) error
	deleteFn  func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, lv *leave.Leave) error {
	return f.createFn(ctx, lv)
}

func (f *fakeLeaveRepo) FindAll(ctx context.Context) ([]leave.Leave, error) {
	return f.findAllFn(ctx)
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id uint) (*leave.Leave, error) {
	return f.findFn(ctx, id)
}

func (f *fakeLeaveRepo) Update(ctx context.Context, lv *leave.Leave) error {
	return f.updateFn(ctx, lv)
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return f.deleteFn(ctx, id)
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("status forced to pending", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			createFn: func(ctx context.Context, lv *leave.Leave) error {
				assert.Equal(t, leave.StatusPending, lv.Status)
				lv.ID = 1
				return nil
			},
		}

		svc := leave.NewService(repo)

		resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: 3,
			StartDate:  "2025-06-02",
			EndDate:    "2025-06-06",
			LeaveType:  leave.TypeAnnual,
			Reason:     "family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "2025-06-02", resp.StartDate)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepo{})

		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: 3,
			StartDate:  "2025-06-06",
			EndDate:    "2025-06-02",
			LeaveType:  leave.TypeSick,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepo{})

		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: 3,
			StartDate:  "02-06-2025",
			EndDate:    "2025-06-06",
			LeaveType:  leave.TypeCasual,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending can be approved", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findFn: func(ctx context.Context, id uint) (*leave.Leave, error) {
				return &leave.Leave{ID: 4, Status: leave.StatusPending}, nil
			},
			updateFn: func(ctx context.Context, lv *leave.Leave) error {
				assert.Equal(t, leave.StatusApproved, lv.Status)
				return nil
			},
		}

		svc := leave.NewService(repo)

		resp, err := svc.UpdateStatus(ctx, "4", leave.UpdateLeaveRequest{Status: leave.StatusApproved})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("resolved request stays resolved", func(t *testing.T) {
		updateCalled := false
		repo := &fakeLeaveRepo{
			findFn: func(ctx context.Context, id uint) (*leave.Leave, error) {
				return &leave.Leave{ID: 4, Status: leave.StatusApproved}, nil
			},
			updateFn: func(ctx context.Context, lv *leave.Leave) error {
				updateCalled = true
				return nil
			},
		}

		svc := leave.NewService(repo)

		_, err := svc.UpdateStatus(ctx, "4", leave.UpdateLeaveRequest{Status: leave.StatusRejected})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.False(t, updateCalled)
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findFn: func(ctx context.Context, id uint) (*leave.Leave, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := leave.NewService(repo)

		_, err := svc.UpdateStatus(ctx, "404", leave.UpdateLeaveRequest{Status: leave.StatusApproved})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			deleteFn: func(ctx context.Context, id uint) (int64, error) {
				return 0, nil
			},
		}

		svc := leave.NewService(repo)

		err := svc.Delete(ctx, "12")

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("non numeric id rejected", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepo{})

		err := svc.Delete(ctx, "nope")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})
}
