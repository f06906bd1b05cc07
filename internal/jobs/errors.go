package jobs

import "errors"

var (
	ErrJobNotFound = errors.New("job not found")
)
