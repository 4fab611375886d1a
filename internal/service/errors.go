package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrJobNotFound        = errors.New("job not found")
	ErrForbidden          = errors.New("you do not have access to this job's applicants")
)
