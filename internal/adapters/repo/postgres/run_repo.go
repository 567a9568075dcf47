package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phenrril/vendorsync/internal/domain"
)

type RunRepo struct{ db *gorm.DB }

var _ domain.RunRepo = (*RunRepo)(nil)

func NewRunRepo(db *gorm.DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.ImportRun{})
}

func (r *RunRepo) Save(ctx context.Context, run *domain.ImportRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Save(run).Error
}
