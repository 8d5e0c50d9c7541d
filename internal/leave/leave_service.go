package leave

import (
	"context"
	"strconv"
	"time"

	leaveerrors "github.com/Parvathyammu/Payroll-Management/internal/leave/errors"

	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
	)

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		s.logger.Warn("create leave invalid start date", zap.String("start_date", req.StartDate))
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave invalid end date", zap.String("end_date", req.EndDate))
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	// Status is never taken from the client. Every request starts Pending.
	lv := &Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, lv); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave success", zap.Uint("leave_id", lv.ID))

	return mapToResponse(*lv), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	s.logger.Debug("get all leaves requested")
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	s.logger.Debug("get leave by id requested", zap.String("leave_id", id))

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}

	lv, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		s.logger.Error("get leave by id failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lv), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave status requested",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return LeaveResponse{}, err
	}

	lv, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		s.logger.Error("update leave fetch existing failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	// Approved and Rejected are terminal.
	if lv.Status != StatusPending {
		s.logger.Warn("update leave rejected, request already resolved",
			zap.Uint("leave_id", lv.ID),
			zap.String("current_status", lv.Status),
			zap.String("requested_status", req.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	lv.Status = req.Status

	if err := s.repo.Update(ctx, lv); err != nil {
		s.logger.Error("update leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update leave status success",
		zap.Uint("leave_id", lv.ID),
		zap.String("status", lv.Status),
	)

	return mapToResponse(*lv), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete leave requested", zap.String("leave_id", id))

	leaveID, err := parseLeaveID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, leaveID)
	if err != nil {
		s.logger.Error("delete leave failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return leaveerrors.ErrLeaveNotFound
	}

	s.logger.Info("delete leave success", zap.Uint("leave_id", leaveID))
	return nil
}

func parseLeaveID(id string) (uint, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, leaveerrors.ErrInvalidLeaveID
	}
	return uint(v), nil
}

func mapToResponse(lv Leave) LeaveResponse {
	return LeaveResponse{
		ID:         lv.ID,
		EmployeeID: lv.EmployeeID,
		StartDate:  lv.StartDate.Format(dateLayout),
		EndDate:    lv.EndDate.Format(dateLayout),
		LeaveType:  lv.LeaveType,
		Reason:     lv.Reason,
		Status:     lv.Status,
		CreatedAt:  lv.CreatedAt.Format(timestampLayout),
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, lv := range leaves {
		res[i] = mapToResponse(lv)
	}
	return res
}
