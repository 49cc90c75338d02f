package service

import "errors"

var (
	ErrInvalidSelection  = errors.New("invalid subject or year selection")
	ErrInvalidParameters = errors.New("invalid quiz parameters")
	ErrNoData            = errors.New("no questions available for the selected subject and year")
	ErrOutOfRange        = errors.New("number of questions out of range")
	ErrNoActiveSession   = errors.New("no active quiz session")
)

// IsClientError reports whether err was caused by the request rather than by
// the service or its infrastructure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrInvalidParameters) ||
		errors.Is(err, ErrNoData) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrNoActiveSession)
}
