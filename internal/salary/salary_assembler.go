package salary

import "github.com/shopspring/decimal"

type aggregates struct {
	costs      map[int64]CostTotals
	shipments  map[string]int64
	bonus      map[string]decimal.Decimal
	deliveries map[int64]DeliveryRange
}

// assembleRows joins the page of drivers with the aggregates. Costs and
// deliveries are keyed by driver id, shipment counts and attendance bonus
// by driver code. Drivers whose total salary is not positive are dropped,
// so a page can hold fewer rows than requested.
func assembleRows(drivers []Driver, aggs aggregates) []DriverSalaryResponse {
	rows := make([]DriverSalaryResponse, 0, len(drivers))
	for _, d := range drivers {
		costs := aggs.costs[d.ID]
		bonus := aggs.bonus[d.DriverCode]

		totalSalary := costs.Total().Add(bonus)
		if !totalSalary.IsPositive() {
			continue
		}

		deliveries := aggs.deliveries[d.ID]
		rows = append(rows, DriverSalaryResponse{
			DriverCode:            d.DriverCode,
			Name:                  d.Name,
			TotalPending:          costs.Pending,
			TotalConfirmed:        costs.Confirmed,
			TotalPaid:             costs.Paid,
			TotalAttendanceSalary: bonus.InexactFloat64(),
			TotalSalary:           totalSalary,
			CountShipment:         aggs.shipments[d.DriverCode],
			FirstDelivery:         deliveries.First,
			LastDelivery:          deliveries.Last,
		})
	}
	return rows
}
