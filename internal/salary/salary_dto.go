package salary

import (
	"time"

	"go-salary/internal/shared/response"

	"github.com/shopspring/decimal"
)

type ListDriverSalaryRequest struct {
	Search     *string            `json:"search"`
	Date       string             `json:"date" binding:"required"`
	DateTo     *string            `json:"date_to"`
	DriverCode *string            `json:"driver_code"` // versi lama; filters.driver_code lebih diutamakan
	Filters    *DriverListFilters `json:"filters"`
	Pagination PaginationParams   `json:"pagination"`
}

type DriverListFilters struct {
	DriverCode *string     `json:"driver_code"`
	Status     *CostStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED PAID"`
}

type PaginationParams struct {
	Take *int `json:"take" binding:"required,gte=1"`
	Skip *int `json:"skip" binding:"required,gte=0"`
}

// Delivery is a shipment reference used for the first/last delivery columns.
type Delivery struct {
	ShipmentDate time.Time `json:"shipment_date"`
	ShipmentNo   string    `json:"shipment_no"`
}

type DriverSalaryResponse struct {
	DriverCode            string          `json:"driver_code"`
	Name                  string          `json:"name"`
	TotalPending          decimal.Decimal `json:"total_pending"`
	TotalConfirmed        decimal.Decimal `json:"total_confirmed"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
	TotalAttendanceSalary float64         `json:"total_attendance_salary"`
	TotalSalary           decimal.Decimal `json:"total_salary"`
	CountShipment         int64           `json:"count_shipment"`
	FirstDelivery         *Delivery       `json:"firstDelivery"`
	LastDelivery          *Delivery       `json:"lastDelivery"`
}

type ListResult struct {
	Rows []DriverSalaryResponse
	Meta response.PaginationMeta
}

// CostTotals is the per-status sum of a driver's shipment costs.
type CostTotals struct {
	Pending   decimal.Decimal
	Confirmed decimal.Decimal
	Paid      decimal.Decimal
}

func (t CostTotals) Total() decimal.Decimal {
	return t.Pending.Add(t.Confirmed).Add(t.Paid)
}

type DeliveryRange struct {
	First *Delivery
	Last  *Delivery
}
