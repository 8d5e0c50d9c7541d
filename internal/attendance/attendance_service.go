package attendance

import (
	"context"
	"strconv"
	"time"

	attendanceerrors "github.com/Parvathyammu/Payroll-Management/internal/attendance/errors"
	"github.com/Parvathyammu/Payroll-Management/internal/dashboard"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("create attendance requested",
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.logger.Warn("create attendance invalid date", zap.String("date", req.Date))
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	att := &Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
		CheckIn:    nullableTime(req.CheckIn),
		CheckOut:   nullableTime(req.CheckOut),
	}

	if err := s.repo.Create(ctx, att); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("create attendance success", zap.Uint("attendance_id", att.ID))

	return mapToResponse(*att), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	s.logger.Debug("get all attendance requested")
	atts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(atts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	s.logger.Debug("get attendance by id requested", zap.String("attendance_id", id))

	attID, err := parseAttendanceID(id)
	if err != nil {
		return AttendanceResponse{}, err
	}

	att, err := s.repo.FindByID(ctx, attID)
	if err != nil {
		s.logger.Error("get attendance by id failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*att), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("update attendance requested",
		zap.String("attendance_id", id),
		zap.String("status", req.Status),
	)

	attID, err := parseAttendanceID(id)
	if err != nil {
		return AttendanceResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.logger.Warn("update attendance invalid date", zap.String("date", req.Date))
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	att, err := s.repo.FindByID(ctx, attID)
	if err != nil {
		s.logger.Error("update attendance fetch existing failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	att.EmployeeID = req.EmployeeID
	att.Date = date
	att.Status = req.Status
	att.CheckIn = nullableTime(req.CheckIn)
	att.CheckOut = nullableTime(req.CheckOut)

	if err := s.repo.Update(ctx, att); err != nil {
		s.logger.Error("update attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("update attendance success", zap.Uint("attendance_id", att.ID))

	return mapToResponse(*att), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete attendance requested", zap.String("attendance_id", id))

	attID, err := parseAttendanceID(id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, attID)
	if err != nil {
		s.logger.Error("delete attendance failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}

	s.invalidateDashboardCache(ctx)

	s.logger.Info("delete attendance success", zap.Uint("attendance_id", attID))
	return nil
}

// Attendance rows feed the dashboard attendance rate.
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

// nullableTime maps an absent or empty clock value to NULL.
func nullableTime(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func parseAttendanceID(id string) (uint, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, attendanceerrors.ErrInvalidAttendanceID
	}
	return uint(v), nil
}

func mapToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format(dateLayout),
		Status:     att.Status,
		CheckIn:    att.CheckIn,
		CheckOut:   att.CheckOut,
	}
}

func mapToListResponse(atts []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(atts))
	for i, a := range atts {
		res[i] = mapToResponse(a)
	}
	return res
}
