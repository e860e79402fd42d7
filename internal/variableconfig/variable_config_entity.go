package variableconfig

import "github.com/shopspring/decimal"

const KeyDriverMonthlyAttendanceSalary = "DRIVER_MONTHLY_ATTENDANCE_SALARY"

type VariableConfig struct {
	ID    int64           `gorm:"column:id;primaryKey"`
	Key   string          `gorm:"column:key;type:varchar(100);uniqueIndex;not null"`
	Value decimal.Decimal `gorm:"column:value;type:numeric;not null;default:0"`
}

func (VariableConfig) TableName() string {
	return "variable_configs"
}
