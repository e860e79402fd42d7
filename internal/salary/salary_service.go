package salary

import (
	"context"

	"go-salary/internal/attendance"
	salaryerrors "go-salary/internal/salary/errors"
	"go-salary/internal/shared/contextutil"
	"go-salary/internal/shared/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	ListDrivers(ctx context.Context, req ListDriverSalaryRequest) (ListResult, error)
}

type service struct {
	repo       Repository
	attendance attendance.Service
	logger     *zap.Logger
}

func NewService(repo Repository, attendanceService attendance.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		repo:       repo,
		attendance: attendanceService,
		logger:     l,
	}
}

func (s *service) ListDrivers(ctx context.Context, req ListDriverSalaryRequest) (ListResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	take, skip, err := validatePagination(req.Pagination)
	if err != nil {
		return ListResult{}, err
	}

	w, err := ResolveWindow(req.Date, req.DateTo)
	if err != nil {
		log.Warn("salary list invalid date", zap.String("request_id", rid), zap.String("date", req.Date), zap.Error(err))
		return ListResult{}, err
	}

	if req.Filters != nil && req.Filters.Status != nil && !req.Filters.Status.Valid() {
		return ListResult{}, salaryerrors.ErrInvalidStatusFilter
	}

	filter := NewDriverFilter(w, req)
	log.Debug("salary list requested",
		zap.String("request_id", rid),
		zap.Time("start", w.Start),
		zap.Time("end", w.End),
		zap.String("driver_code", filter.DriverCode),
		zap.Bool("search", filter.Search.Valid()),
		zap.Int("take", take),
		zap.Int("skip", skip),
	)

	total, err := s.repo.CountDrivers(ctx, filter)
	if err != nil {
		log.Error("salary list count drivers failed", zap.String("request_id", rid), zap.Error(err))
		return ListResult{}, mapRepositoryError("count drivers", err)
	}

	drivers, err := s.repo.FindDrivers(ctx, filter, take, skip)
	if err != nil {
		log.Error("salary list find drivers failed", zap.String("request_id", rid), zap.Error(err))
		return ListResult{}, mapRepositoryError("find drivers", err)
	}

	aggs, err := s.aggregate(ctx, drivers, w)
	if err != nil {
		log.Error("salary list aggregation failed", zap.String("request_id", rid), zap.Error(err))
		return ListResult{}, err
	}

	rows := assembleRows(drivers, aggs)
	log.Info("salary list served",
		zap.String("request_id", rid),
		zap.Int64("total", total),
		zap.Int("page_drivers", len(drivers)),
		zap.Int("rows", len(rows)),
	)

	return ListResult{
		Rows: rows,
		Meta: response.NewPaginationMeta(total, take, skip),
	}, nil
}

// aggregate runs the four per-page aggregates concurrently. The first
// failure cancels the rest.
func (s *service) aggregate(ctx context.Context, drivers []Driver, w Window) (aggregates, error) {
	var aggs aggregates
	if len(drivers) == 0 {
		return aggs, nil
	}

	ids := make([]int64, 0, len(drivers))
	codes := make([]string, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ID)
		codes = append(codes, d.DriverCode)
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Total biaya per status
	g.Go(func() error {
		costs, err := s.repo.SumShipmentCosts(gCtx, ids, w)
		if err != nil {
			return mapRepositoryError("sum shipment costs", err)
		}
		aggs.costs = costs
		return nil
	})

	// 2. Jumlah shipment unik
	g.Go(func() error {
		counts, err := s.repo.CountShipments(gCtx, ids, w)
		if err != nil {
			return mapRepositoryError("count shipments", err)
		}
		aggs.shipments = counts
		return nil
	})

	// 3. Bonus kehadiran (rate x hari hadir)
	g.Go(func() error {
		bonus, err := s.attendance.BonusByDriverCode(gCtx, codes, w.Start, w.End)
		if err != nil {
			return mapRepositoryError("attendance bonus", err)
		}
		aggs.bonus = bonus
		return nil
	})

	// 4. Pengiriman pertama & terakhir
	g.Go(func() error {
		ranges, err := s.repo.FindDeliveryRanges(gCtx, ids, w)
		if err != nil {
			return mapRepositoryError("delivery ranges", err)
		}
		aggs.deliveries = ranges
		return nil
	})

	if err := g.Wait(); err != nil {
		return aggregates{}, err
	}
	return aggs, nil
}

func validatePagination(p PaginationParams) (take, skip int, err error) {
	if p.Take == nil || p.Skip == nil || *p.Take < 1 || *p.Skip < 0 {
		return 0, 0, salaryerrors.ErrInvalidPagination
	}
	return *p.Take, *p.Skip, nil
}
