package domain

import "time"

type Job struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	EmployerID  string    `gorm:"index" json:"employerId"`
	Employer    *User     `gorm:"foreignKey:EmployerID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmployerContact is the projection shown next to a listed job.
type EmployerContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JobListing is a job with its employer's contact projected alongside.
type JobListing struct {
	Job
	Employer EmployerContact `json:"employer"`
}
