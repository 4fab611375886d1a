package service

import (
	"context"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
)

type JobSvc struct{ repo *repository.JobRepo }

func NewJobSvc(r *repository.JobRepo) *JobSvc { return &JobSvc{repo: r} }

func (s *JobSvc) Create(ctx context.Context, in domain.Job, employerID string) (*domain.Job, error) {
	in.EmployerID = employerID
	if err := s.repo.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *JobSvc) List(ctx context.Context) ([]domain.JobListing, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.JobListing, 0, len(jobs))
	for _, j := range jobs {
		l := domain.JobListing{Job: j}
		if j.Employer != nil {
			l.Employer = domain.EmployerContact{Name: j.Employer.Name, Email: j.Employer.Email}
		}
		out = append(out, l)
	}
	return out, nil
}
