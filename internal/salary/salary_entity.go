package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type CostStatus string

const (
	CostPending   CostStatus = "PENDING"
	CostConfirmed CostStatus = "CONFIRMED"
	CostPaid      CostStatus = "PAID"
)

func (s CostStatus) Valid() bool {
	switch s {
	case CostPending, CostConfirmed, CostPaid:
		return true
	}
	return false
}

type ShipmentStatus string

const (
	ShipmentCancelled ShipmentStatus = "CANCELLED"
	ShipmentRunning   ShipmentStatus = "RUNNING"
	ShipmentDone      ShipmentStatus = "DONE"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentCancelled, ShipmentRunning, ShipmentDone:
		return true
	}
	return false
}

type Driver struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	DriverCode string `gorm:"column:driver_code;type:varchar(50);uniqueIndex;not null"`
	Name       string `gorm:"column:name;type:varchar(255);not null"`

	ShipmentCosts []ShipmentCost `gorm:"foreignKey:DriverCode;references:DriverCode"`
}

func (Driver) TableName() string {
	return "drivers"
}

type Shipment struct {
	ShipmentNo     string         `gorm:"column:shipment_no;primaryKey;type:varchar(50)"`
	ShipmentDate   time.Time      `gorm:"column:shipment_date;type:timestamptz;not null;index"`
	ShipmentStatus ShipmentStatus `gorm:"column:shipment_status;type:varchar(20);not null"`

	ShipmentCosts []ShipmentCost `gorm:"foreignKey:ShipmentNo;references:ShipmentNo"`
}

func (Shipment) TableName() string {
	return "shipments"
}

// ShipmentCost is one driver's charge on one shipment. total_costs is a
// numeric column, kept as decimal to avoid float rounding.
type ShipmentCost struct {
	ID         int64           `gorm:"column:id;primaryKey"`
	ShipmentNo string          `gorm:"column:shipment_no;type:varchar(50);not null;index"`
	DriverCode string          `gorm:"column:driver_code;type:varchar(50);not null;index"`
	TotalCosts decimal.Decimal `gorm:"column:total_costs;type:numeric;not null;default:0"`
	CostStatus CostStatus      `gorm:"column:cost_status;type:varchar(20);not null"`
}

func (ShipmentCost) TableName() string {
	return "shipment_costs"
}
