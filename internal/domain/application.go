package domain

import "time"

// Application records one user applying to one job. The composite
// unique index is the real apply-once guard; the service-level lookup
// is only an early exit.
type Application struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	JobID       string    `gorm:"index;uniqueIndex:idx_job_applicant" json:"jobId"`
	ApplicantID string    `gorm:"uniqueIndex:idx_job_applicant" json:"applicantId"`
	Applicant   *User     `gorm:"foreignKey:ApplicantID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicantProfile is the {id, name, email} projection of an applicant.
type ApplicantProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicantEntry is one row of an employer's applicant list.
type ApplicantEntry struct {
	ID          string           `json:"id"`
	JobID       string           `json:"jobId"`
	ApplicantID string           `json:"applicantId"`
	Applicant   ApplicantProfile `json:"applicant"`
}
