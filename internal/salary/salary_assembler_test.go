package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssembleRows(t *testing.T) {
	drivers := []Driver{
		{ID: 1, DriverCode: "DRV-1", Name: "Budi"},
		{ID: 2, DriverCode: "DRV-2", Name: "Sari"},
		{ID: 3, DriverCode: "DRV-3", Name: "Joko"},
	}
	first := &Delivery{ShipmentNo: "SHP-1", ShipmentDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("joins by id and driver code", func(t *testing.T) {
		rows := assembleRows(drivers, aggregates{
			costs: map[int64]CostTotals{
				1: {Pending: decimal.NewFromInt(10), Confirmed: decimal.NewFromInt(20), Paid: decimal.NewFromInt(30)},
				3: {Paid: decimal.NewFromInt(5)},
			},
			shipments:  map[string]int64{"DRV-1": 2, "DRV-3": 1},
			bonus:      map[string]decimal.Decimal{"DRV-1": decimal.NewFromInt(100)},
			deliveries: map[int64]DeliveryRange{1: {First: first, Last: first}},
		})

		if assert.Len(t, rows, 2) {
			assert.Equal(t, "DRV-1", rows[0].DriverCode)
			assert.Equal(t, "160", rows[0].TotalSalary.String())
			assert.Equal(t, float64(100), rows[0].TotalAttendanceSalary)
			assert.Equal(t, int64(2), rows[0].CountShipment)
			assert.Same(t, first, rows[0].FirstDelivery)

			assert.Equal(t, "DRV-3", rows[1].DriverCode)
			assert.Equal(t, "5", rows[1].TotalSalary.String())
			assert.Equal(t, float64(0), rows[1].TotalAttendanceSalary)
			assert.Nil(t, rows[1].FirstDelivery)
		}
	})

	t.Run("nil aggregates drop every row", func(t *testing.T) {
		rows := assembleRows(drivers, aggregates{})
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
