package variableconfig_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-salary/internal/variableconfig"
	variableconfigMock "go-salary/internal/variableconfig/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service   variableconfig.Service
	repo      *variableconfigMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := variableconfigMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   variableconfig.NewService(repo, rdb, time.Hour),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestVariableConfigService_GetDecimal(t *testing.T) {
	ctx := context.Background()
	key := variableconfig.KeyDriverMonthlyAttendanceSalary
	cacheKey := variableconfig.CacheKey(key)

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).SetVal("1500")

		v, err := deps.service.GetDecimal(ctx, key)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1500).Equal(v))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss reads repository and stores value", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindValue(gomock.Any(), key).
			Return(decimal.NewFromInt(50000), true, nil)
		deps.redismock.ExpectSet(cacheKey, "50000", time.Hour).SetVal("OK")

		v, err := deps.service.GetDecimal(ctx, key)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50000).Equal(v))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("missing key resolves to zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindValue(gomock.Any(), key).
			Return(decimal.Zero, false, nil)
		deps.redismock.ExpectSet(cacheKey, "0", time.Hour).SetVal("OK")

		v, err := deps.service.GetDecimal(ctx, key)

		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	})

	t.Run("repository error is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindValue(gomock.Any(), key).
			Return(decimal.Zero, false, errors.New("db down"))

		_, err := deps.service.GetDecimal(ctx, key)

		assert.EqualError(t, err, "db down")
	})

	t.Run("without redis always reads repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := variableconfigMock.NewMockRepository(ctrl)
		svc := variableconfig.NewService(repo, nil, 0)

		repo.EXPECT().
			FindValue(gomock.Any(), key).
			Return(decimal.NewFromInt(10), true, nil).
			Times(2)

		for i := 0; i < 2; i++ {
			v, err := svc.GetDecimal(ctx, key)
			assert.NoError(t, err)
			assert.True(t, decimal.NewFromInt(10).Equal(v))
		}
	})
}
