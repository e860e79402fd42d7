package salary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	attendanceMock "go-salary/internal/attendance/mock"
	"go-salary/internal/salary"
	salaryerrors "go-salary/internal/salary/errors"
	salaryMock "go-salary/internal/salary/mock"
	"go-salary/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service    salary.Service
	repo       *salaryMock.MockRepository
	attendance *attendanceMock.MockService
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := salaryMock.NewMockRepository(ctrl)
	att := attendanceMock.NewMockService(ctrl)

	return &serviceDeps{
		service:    salary.NewService(repo, att),
		repo:       repo,
		attendance: att,
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func marchRequest() salary.ListDriverSalaryRequest {
	return salary.ListDriverSalaryRequest{
		Date: "2024-03-15",
		Pagination: salary.PaginationParams{
			Take: intPtr(10),
			Skip: intPtr(0),
		},
	}
}

var marchWindow = salary.Window{
	Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 31, 23, 59, 59, 999000000, time.UTC),
}

func TestSalaryService_ListDrivers(t *testing.T) {
	ctx := context.Background()

	t.Run("success joins aggregates and drops zero salary rows", func(t *testing.T) {
		deps := setupServiceTest(t)

		drivers := []salary.Driver{
			{ID: 1, DriverCode: "DRV-1", Name: "Budi"},
			{ID: 2, DriverCode: "DRV-2", Name: "Sari"},
			{ID: 3, DriverCode: "DRV-3", Name: "Joko"},
		}
		first := &salary.Delivery{ShipmentNo: "SHP-1", ShipmentDate: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)}
		last := &salary.Delivery{ShipmentNo: "SHP-9", ShipmentDate: time.Date(2024, 3, 28, 8, 0, 0, 0, time.UTC)}

		deps.repo.EXPECT().CountDrivers(gomock.Any(), gomock.Any()).Return(int64(23), nil)
		deps.repo.EXPECT().FindDrivers(gomock.Any(), gomock.Any(), 10, 0).Return(drivers, nil)
		deps.repo.EXPECT().
			SumShipmentCosts(gomock.Any(), []int64{1, 2, 3}, marchWindow).
			Return(map[int64]salary.CostTotals{
				1: {Pending: dec("100000"), Confirmed: dec("50000"), Paid: dec("25000")},
			}, nil)
		deps.repo.EXPECT().
			CountShipments(gomock.Any(), []int64{1, 2, 3}, marchWindow).
			Return(map[string]int64{"DRV-1": 4}, nil)
		deps.repo.EXPECT().
			FindDeliveryRanges(gomock.Any(), []int64{1, 2, 3}, marchWindow).
			Return(map[int64]salary.DeliveryRange{1: {First: first, Last: last}}, nil)
		deps.attendance.EXPECT().
			BonusByDriverCode(gomock.Any(), []string{"DRV-1", "DRV-2", "DRV-3"}, marchWindow.Start, marchWindow.End).
			Return(map[string]decimal.Decimal{"DRV-1": dec("10000"), "DRV-2": dec("20000")}, nil)

		res, err := deps.service.ListDrivers(ctx, marchRequest())

		assert.NoError(t, err)
		if assert.Len(t, res.Rows, 2) {
			row := res.Rows[0]
			assert.Equal(t, "DRV-1", row.DriverCode)
			assert.Equal(t, "185000", row.TotalSalary.String())
			assert.Equal(t, float64(10000), row.TotalAttendanceSalary)
			assert.Equal(t, int64(4), row.CountShipment)
			assert.Equal(t, first, row.FirstDelivery)
			assert.Equal(t, last, row.LastDelivery)

			// hanya bonus kehadiran, tanpa shipment
			row = res.Rows[1]
			assert.Equal(t, "DRV-2", row.DriverCode)
			assert.Equal(t, "20000", row.TotalSalary.String())
			assert.Equal(t, "0", row.TotalPending.String())
			assert.Equal(t, int64(0), row.CountShipment)
			assert.Nil(t, row.FirstDelivery)
			assert.Nil(t, row.LastDelivery)
		}
		assert.Equal(t, int64(23), res.Meta.TotalRow)
		assert.Equal(t, 3, res.Meta.TotalPage)
		assert.Equal(t, 1, res.Meta.Current)
		assert.Equal(t, 10, res.Meta.PageSize)
	})

	t.Run("empty page skips aggregates", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := marchRequest()
		req.Pagination.Skip = intPtr(20)

		deps.repo.EXPECT().CountDrivers(gomock.Any(), gomock.Any()).Return(int64(5), nil)
		deps.repo.EXPECT().FindDrivers(gomock.Any(), gomock.Any(), 10, 20).Return([]salary.Driver{}, nil)

		res, err := deps.service.ListDrivers(ctx, req)

		assert.NoError(t, err)
		assert.NotNil(t, res.Rows)
		assert.Empty(t, res.Rows)
		assert.Equal(t, 3, res.Meta.Current)
		assert.Equal(t, 1, res.Meta.TotalPage)
	})

	t.Run("filters reach the repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		paid := salary.CostPaid
		req := marchRequest()
		req.DateTo = strPtr("2024-05-01")
		req.Search = strPtr("  budi ")
		req.DriverCode = strPtr("DRV-OLD")
		req.Filters = &salary.DriverListFilters{DriverCode: strPtr("DRV-1"), Status: &paid}

		deps.repo.EXPECT().CountDrivers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f salary.DriverFilter) (int64, error) {
				assert.Equal(t, "DRV-1", f.DriverCode)
				assert.Equal(t, "budi", f.Search.Text)
				assert.False(t, f.Search.IsNumber)
				assert.Equal(t, salary.CostPaid, *f.Status)
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.Window.Start)
				assert.Equal(t, time.May, f.Window.End.Month())
				assert.Equal(t, 31, f.Window.End.Day())
				return 0, nil
			})
		deps.repo.EXPECT().FindDrivers(gomock.Any(), gomock.Any(), 10, 0).Return(nil, nil)

		res, err := deps.service.ListDrivers(ctx, req)

		assert.NoError(t, err)
		assert.Empty(t, res.Rows)
		assert.Equal(t, 0, res.Meta.TotalPage)
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := marchRequest()
		req.Date = "15/03/2024"

		_, err := deps.service.ListDrivers(ctx, req)
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidDateFormat)
	})

	t.Run("date_to before date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := marchRequest()
		req.DateTo = strPtr("2024-01-10")

		_, err := deps.service.ListDrivers(ctx, req)
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidDateRange)
	})

	t.Run("missing pagination", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := marchRequest()
		req.Pagination.Take = nil

		_, err := deps.service.ListDrivers(ctx, req)
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidPagination)
	})

	t.Run("unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		bogus := salary.CostStatus("SETTLED")
		req := marchRequest()
		req.Filters = &salary.DriverListFilters{Status: &bogus}

		_, err := deps.service.ListDrivers(ctx, req)
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidStatusFilter)
	})

	t.Run("count failure maps pg error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().CountDrivers(gomock.Any(), gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "42P01", Message: `relation "drivers" does not exist`})

		_, err := deps.service.ListDrivers(ctx, marchRequest())

		appErr, ok := apperror.As(err)
		if assert.True(t, ok) {
			assert.Equal(t, apperror.CodeDataAccess, appErr.Code)
			assert.Equal(t, `relation "drivers" does not exist`, appErr.Message)
		}
	})

	t.Run("aggregate failure short circuits", func(t *testing.T) {
		deps := setupServiceTest(t)
		boom := errors.New("connection reset")

		deps.repo.EXPECT().CountDrivers(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.repo.EXPECT().FindDrivers(gomock.Any(), gomock.Any(), 10, 0).
			Return([]salary.Driver{{ID: 1, DriverCode: "DRV-1", Name: "Budi"}}, nil)
		deps.repo.EXPECT().SumShipmentCosts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
		deps.repo.EXPECT().CountShipments(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]int64{}, nil).AnyTimes()
		deps.repo.EXPECT().FindDeliveryRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[int64]salary.DeliveryRange{}, nil).AnyTimes()
		deps.attendance.EXPECT().BonusByDriverCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]decimal.Decimal{}, nil).AnyTimes()

		res, err := deps.service.ListDrivers(ctx, marchRequest())

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, res.Rows)
	})
}
