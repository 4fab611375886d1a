package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
)

var ErrDuplicateApplication = errors.New("already applied to this job")

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

func (r *ApplicationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Application{})
}

// Create relies on the (job_id, applicant_id) unique index: the loser
// of a concurrent double-apply gets ErrDuplicateApplication here no
// matter what the earlier Exists check saw.
func (r *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepo) ByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	var out []domain.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
