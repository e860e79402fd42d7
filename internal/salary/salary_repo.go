package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	CountDrivers(ctx context.Context, filter DriverFilter) (int64, error)
	FindDrivers(ctx context.Context, filter DriverFilter, take, skip int) ([]Driver, error)
	SumShipmentCosts(ctx context.Context, driverIDs []int64, w Window) (map[int64]CostTotals, error)
	CountShipments(ctx context.Context, driverIDs []int64, w Window) (map[string]int64, error)
	FindDeliveryRanges(ctx context.Context, driverIDs []int64, w Window) (map[int64]DeliveryRange, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountDrivers(ctx context.Context, filter DriverFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Driver{}).
		Scopes(filter.Scopes()...).
		Count(&total).Error
	return total, err
}

func (r *repository) FindDrivers(ctx context.Context, filter DriverFilter, take, skip int) ([]Driver, error) {
	var drivers []Driver
	err := r.db.WithContext(ctx).
		Model(&Driver{}).
		Scopes(filter.Scopes()...).
		Order("drivers.id ASC").
		Limit(take).
		Offset(skip).
		Find(&drivers).Error
	return drivers, err
}

// activeCostsInWindow joins costs to their shipment and driver, keeping
// non-cancelled shipments inside the window.
func (r *repository) activeCostsInWindow(ctx context.Context, driverIDs []int64, w Window) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shipment_costs AS sc").
		Joins("JOIN shipments s ON s.shipment_no = sc.shipment_no").
		Joins("JOIN drivers d ON d.driver_code = sc.driver_code").
		Where("d.id IN ?", driverIDs).
		Where("s.shipment_status <> ?", string(ShipmentCancelled)).
		Where("s.shipment_date BETWEEN ? AND ?", w.Start, w.End)
}

type costTotalsRow struct {
	DriverID      int64
	CostPending   decimal.Decimal
	CostConfirmed decimal.Decimal
	CostPaid      decimal.Decimal
}

func (r *repository) SumShipmentCosts(ctx context.Context, driverIDs []int64, w Window) (map[int64]CostTotals, error) {
	totals := make(map[int64]CostTotals, len(driverIDs))
	if len(driverIDs) == 0 {
		return totals, nil
	}

	var rows []costTotalsRow
	err := r.activeCostsInWindow(ctx, driverIDs, w).
		Select(`d.id AS driver_id,
			COALESCE(SUM(sc.total_costs) FILTER (WHERE sc.cost_status = ?), 0) AS cost_pending,
			COALESCE(SUM(sc.total_costs) FILTER (WHERE sc.cost_status = ?), 0) AS cost_confirmed,
			COALESCE(SUM(sc.total_costs) FILTER (WHERE sc.cost_status = ?), 0) AS cost_paid`,
			string(CostPending), string(CostConfirmed), string(CostPaid)).
		Group("d.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.DriverID] = CostTotals{
			Pending:   row.CostPending,
			Confirmed: row.CostConfirmed,
			Paid:      row.CostPaid,
		}
	}
	return totals, nil
}

type shipmentCountRow struct {
	DriverCode    string
	CountShipment int64
}

func (r *repository) CountShipments(ctx context.Context, driverIDs []int64, w Window) (map[string]int64, error) {
	counts := make(map[string]int64, len(driverIDs))
	if len(driverIDs) == 0 {
		return counts, nil
	}

	var rows []shipmentCountRow
	err := r.activeCostsInWindow(ctx, driverIDs, w).
		Select("sc.driver_code AS driver_code, COUNT(DISTINCT sc.shipment_no) AS count_shipment").
		Group("sc.driver_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.DriverCode] = row.CountShipment
	}
	return counts, nil
}

type deliveryRow struct {
	DriverID     int64
	ShipmentDate time.Time
	ShipmentNo   string
}

func (r *repository) FindDeliveryRanges(ctx context.Context, driverIDs []int64, w Window) (map[int64]DeliveryRange, error) {
	ranges := make(map[int64]DeliveryRange, len(driverIDs))
	if len(driverIDs) == 0 {
		return ranges, nil
	}

	var rows []deliveryRow
	err := r.activeCostsInWindow(ctx, driverIDs, w).
		Select("d.id AS driver_id, s.shipment_date AS shipment_date, s.shipment_no AS shipment_no").
		Group("d.id, s.shipment_date, s.shipment_no").
		Order("s.shipment_date ASC, s.shipment_no ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return collectDeliveryRanges(rows), nil
}

// collectDeliveryRanges expects rows ordered by shipment date ascending.
func collectDeliveryRanges(rows []deliveryRow) map[int64]DeliveryRange {
	ranges := make(map[int64]DeliveryRange)
	for _, row := range rows {
		d := &Delivery{ShipmentDate: row.ShipmentDate, ShipmentNo: row.ShipmentNo}
		rg, ok := ranges[row.DriverID]
		if !ok {
			rg.First = d
		}
		rg.Last = d
		ranges[row.DriverID] = rg
	}
	return ranges
}
