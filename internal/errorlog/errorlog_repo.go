package errorlog

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=errorlog_repo.go -destination=mock/errorlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, entry *EndpointErrorLog) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, entry *EndpointErrorLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
