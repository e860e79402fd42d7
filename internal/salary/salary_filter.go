package salary

import (
	"strings"

	"gorm.io/gorm"
)

type Scope = func(db *gorm.DB) *gorm.DB

// DriverFilter selects the drivers listed on a salary page. The same
// scopes back both the count and the page query.
type DriverFilter struct {
	Window     Window
	Status     *CostStatus
	DriverCode string
	Search     Search
}

func NewDriverFilter(w Window, req ListDriverSalaryRequest) DriverFilter {
	f := DriverFilter{
		Window: w,
		Search: ParseSearch(req.Search),
	}

	if req.DriverCode != nil {
		f.DriverCode = strings.TrimSpace(*req.DriverCode)
	}
	if req.Filters != nil {
		if req.Filters.DriverCode != nil && strings.TrimSpace(*req.Filters.DriverCode) != "" {
			f.DriverCode = strings.TrimSpace(*req.Filters.DriverCode)
		}
		f.Status = req.Filters.Status
	}
	return f
}

func (f DriverFilter) Scopes() []Scope {
	return []Scope{
		activeCostInWindow(f.Window),
		statusScope(f.Status),
		driverCodeScope(f.DriverCode),
		searchScope(f.Search),
	}
}

func matchAll(db *gorm.DB) *gorm.DB {
	return db
}

const activeCostInWindowSQL = `EXISTS (
	SELECT 1 FROM shipment_costs sc
	JOIN shipments s ON s.shipment_no = sc.shipment_no
	WHERE sc.driver_code = drivers.driver_code
	AND s.shipment_status <> ?
	AND s.shipment_date BETWEEN ? AND ?)`

func activeCostInWindow(w Window) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(activeCostInWindowSQL, string(ShipmentCancelled), w.Start, w.End)
	}
}

const positiveCostSQL = `EXISTS (
	SELECT 1 FROM shipment_costs sc
	WHERE sc.driver_code = drivers.driver_code
	AND sc.cost_status = ?
	AND sc.total_costs > 0)`

func hasPositiveCost(status CostStatus) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(positiveCostSQL, string(status))
	}
}

func lacksPositiveCost(status CostStatus) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("NOT "+positiveCostSQL, string(status))
	}
}

// statusScope maps a salary state onto shipment cost predicates.
// PAID means fully settled: something paid and nothing pending or confirmed.
func statusScope(status *CostStatus) Scope {
	if status == nil {
		return matchAll
	}

	switch *status {
	case CostPending:
		return hasPositiveCost(CostPending)
	case CostConfirmed:
		return hasPositiveCost(CostConfirmed)
	case CostPaid:
		return func(db *gorm.DB) *gorm.DB {
			db = hasPositiveCost(CostPaid)(db)
			db = lacksPositiveCost(CostConfirmed)(db)
			return lacksPositiveCost(CostPending)(db)
		}
	default:
		return matchAll
	}
}

func driverCodeScope(code string) Scope {
	if code == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("drivers.driver_code = ?", code)
	}
}

const exactCostSQL = `EXISTS (
	SELECT 1 FROM shipment_costs sc
	WHERE sc.driver_code = drivers.driver_code
	AND sc.total_costs = ?)`

func searchScope(s Search) Scope {
	if !s.Valid() {
		return matchAll
	}

	pattern := containsPattern(s.Text)
	return func(db *gorm.DB) *gorm.DB {
		if s.IsNumber {
			return db.Where(
				"(drivers.driver_code LIKE ? OR drivers.name LIKE ? OR "+exactCostSQL+")",
				pattern, pattern, s.Number,
			)
		}
		return db.Where("(drivers.driver_code LIKE ? OR drivers.name LIKE ?)", pattern, pattern)
	}
}
