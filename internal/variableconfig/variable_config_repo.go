package variableconfig

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=variable_config_repo.go -destination=mock/variable_config_repo_mock.go -package=mock
type Repository interface {
	// FindValue reports found=false when the key has no row.
	FindValue(ctx context.Context, key string) (value decimal.Decimal, found bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindValue(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	var rows []VariableConfig
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		Order("id ASC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, false, err
	}
	if len(rows) == 0 {
		return decimal.Zero, false, nil
	}
	return rows[0].Value, true, nil
}
