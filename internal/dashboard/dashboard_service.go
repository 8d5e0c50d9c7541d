package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dashboarderrors "github.com/Parvathyammu/Payroll-Management/internal/dashboard/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// SummaryCacheKey is shared with the write-side services, which delete it
// whenever employees, payroll or attendance change.
const SummaryCacheKey = "dashboard:summary"

// Short TTL: the cache only has to absorb dashboard polling between
// writes, not serve stale data for long.
const summaryCacheTTL = 30 * time.Second

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetSummary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetSummary(ctx context.Context) (SummaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SummaryCacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SummaryCacheKey, func() (interface{}, error) {
		summary, err := s.repo.FetchSummary(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SummaryResponse{}, dashboarderrors.ErrSummaryNotFound
			}
			s.logger.Error("fetch dashboard summary failed", zap.Error(err))
			return SummaryResponse{}, err
		}

		resp := SummaryResponse{
			TotalEmployees: summary.TotalEmployees,
			TotalPayroll:   summary.TotalPayroll,
			AttendanceRate: summary.AttendanceRate,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, SummaryCacheKey, jsonData, summaryCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}
