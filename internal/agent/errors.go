package agent

import "errors"

var (
	ErrEmptyResume         = errors.New("resume text cannot be empty")
	ErrEmptyJobDescription = errors.New("job description cannot be empty")
	ErrEmptyCriticText     = errors.New("critic response cannot be empty")
	ErrEmptyAdvocateText   = errors.New("advocate response cannot be empty")
)
