package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	CountPresentDays(ctx context.Context, driverCodes []string, start, end time.Time) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type presentDaysRow struct {
	DriverCode string
	Days       int64
}

func (r *repository) CountPresentDays(ctx context.Context, driverCodes []string, start, end time.Time) (map[string]int64, error) {
	counts := make(map[string]int64, len(driverCodes))
	if len(driverCodes) == 0 {
		return counts, nil
	}

	var rows []presentDaysRow
	err := r.db.WithContext(ctx).
		Model(&DriverAttendance{}).
		Select("driver_code, COUNT(id) AS days").
		Where("driver_code IN ?", driverCodes).
		Where("attendance_status = ?", true).
		Where("attendance_date BETWEEN ? AND ?", start, end).
		Group("driver_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.DriverCode] = row.Days
	}
	return counts, nil
}
