package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db: db}
}

func (r *JobRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Job{})
}

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobRepo) ByID(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	if err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns every job with its employer preloaded. Full scan, no
// pagination: the listing endpoint serves the whole board.
func (r *JobRepo) List(ctx context.Context) ([]domain.Job, error) {
	var out []domain.Job
	if err := r.db.WithContext(ctx).Preload("Employer").Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
