package attendance

import (
	"context"
	"time"

	"go-salary/internal/shared/contextutil"
	"go-salary/internal/variableconfig"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// BonusByDriverCode returns present days × monthly attendance rate per
	// driver code. Drivers without attendance are absent from the map.
	BonusByDriverCode(ctx context.Context, driverCodes []string, start, end time.Time) (map[string]decimal.Decimal, error)
}

type service struct {
	repo    Repository
	configs variableconfig.Service
	logger  *zap.Logger
}

func NewService(repo Repository, configs variableconfig.Service) Service {
	return &service{
		repo:    repo,
		configs: configs,
		logger:  zap.L().Named("attendance.service"),
	}
}

func (s *service) BonusByDriverCode(ctx context.Context, driverCodes []string, start, end time.Time) (map[string]decimal.Decimal, error) {
	bonus := make(map[string]decimal.Decimal, len(driverCodes))
	if len(driverCodes) == 0 {
		return bonus, nil
	}

	rate, err := s.configs.GetDecimal(ctx, variableconfig.KeyDriverMonthlyAttendanceSalary)
	if err != nil {
		return nil, err
	}

	days, err := s.repo.CountPresentDays(ctx, driverCodes, start, end)
	if err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, s.logger).Debug("attendance bonus computed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("rate", rate.String()),
		zap.Int("drivers_with_attendance", len(days)),
	)

	for code, n := range days {
		bonus[code] = rate.Mul(decimal.NewFromInt(n))
	}
	return bonus, nil
}
