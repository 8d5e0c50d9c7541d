package dashboard_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Parvathyammu/Payroll-Management/internal/dashboard"
	dashboarderrors "github.com/Parvathyammu/Payroll-Management/internal/dashboard/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSummaryRepo struct {
	fetchFn func(ctx context.Context) (*dashboard.Summary, error)
	calls   int
}

func (f *fakeSummaryRepo) FetchSummary(ctx context.Context) (*dashboard.Summary, error) {
	f.calls++
	return f.fetchFn(ctx)
}

func TestDashboardService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cached, _ := json.Marshal(dashboard.SummaryResponse{
			TotalEmployees: 12,
			TotalPayroll:   48300.50,
			AttendanceRate: 91.67,
		})
		redisMock.ExpectGet(dashboard.SummaryCacheKey).SetVal(string(cached))

		repo := &fakeSummaryRepo{
			fetchFn: func(ctx context.Context) (*dashboard.Summary, error) {
				t.Fatal("repository must not be called on cache hit")
				return nil, nil
			},
		}

		svc := dashboard.NewService(repo, rdb)

		resp, err := svc.GetSummary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), resp.TotalEmployees)
		assert.Equal(t, 48300.50, resp.TotalPayroll)
		assert.Zero(t, repo.calls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss reads the view and fills the cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		redisMock.ExpectGet(dashboard.SummaryCacheKey).RedisNil()

		expected := dashboard.SummaryResponse{
			TotalEmployees: 3,
			TotalPayroll:   15750,
			AttendanceRate: 66.67,
		}
		jsonData, _ := json.Marshal(expected)
		redisMock.ExpectSet(dashboard.SummaryCacheKey, jsonData, 30*time.Second).SetVal("OK")

		repo := &fakeSummaryRepo{
			fetchFn: func(ctx context.Context) (*dashboard.Summary, error) {
				return &dashboard.Summary{
					TotalEmployees: 3,
					TotalPayroll:   15750,
					AttendanceRate: 66.67,
				}, nil
			},
		}

		svc := dashboard.NewService(repo, rdb)

		resp, err := svc.GetSummary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.Equal(t, 1, repo.calls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("empty view maps to not found", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(dashboard.SummaryCacheKey).RedisNil()

		repo := &fakeSummaryRepo{
			fetchFn: func(ctx context.Context) (*dashboard.Summary, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := dashboard.NewService(repo, rdb)

		_, err := svc.GetSummary(ctx)

		assert.ErrorIs(t, err, dashboarderrors.ErrSummaryNotFound)
	})
}
