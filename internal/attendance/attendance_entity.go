package attendance

import "time"

// DriverAttendance is one attendance record. Only rows with
// AttendanceStatus=true count toward the monthly bonus.
type DriverAttendance struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	DriverCode       *string   `gorm:"column:driver_code;type:varchar(50);index"`
	AttendanceDate   time.Time `gorm:"column:attendance_date;type:timestamptz;not null;index"`
	AttendanceStatus bool      `gorm:"column:attendance_status;not null;default:false"`
}

func (DriverAttendance) TableName() string {
	return "driver_attendances"
}
