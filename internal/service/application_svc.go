package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
)

// Notifier delivers a best-effort message. Implementations must not
// block the caller or surface failures.
type Notifier interface {
	Send(message string)
}

type ApplicationSvc struct {
	jobs   *repository.JobRepo
	apps   *repository.ApplicationRepo
	notify Notifier
}

func NewApplicationSvc(jobs *repository.JobRepo, apps *repository.ApplicationRepo, n Notifier) *ApplicationSvc {
	return &ApplicationSvc{jobs: jobs, apps: apps, notify: n}
}

func (s *ApplicationSvc) Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	if _, err := s.jobs.ByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	// Early exit only; the unique index in the store decides races.
	exists, err := s.apps.Exists(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateApplication
	}

	a := &domain.Application{JobID: jobID, ApplicantID: applicantID}
	if err := s.apps.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notify.Send(fmt.Sprintf("User %s just applied to job %s. Review them soon!", applicantID, jobID))
	return a, nil
}

func (s *ApplicationSvc) ApplicantsForJob(ctx context.Context, jobID, requesterID string) ([]domain.ApplicantEntry, error) {
	job, err := s.jobs.ByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.EmployerID != requesterID {
		return nil, ErrForbidden
	}

	apps, err := s.apps.ByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApplicantEntry, 0, len(apps))
	for _, a := range apps {
		e := domain.ApplicantEntry{ID: a.ID, JobID: a.JobID, ApplicantID: a.ApplicantID}
		if a.Applicant != nil {
			e.Applicant = domain.ApplicantProfile{ID: a.Applicant.ID, Name: a.Applicant.Name, Email: a.Applicant.Email}
		}
		out = append(out, e)
	}
	return out, nil
}
