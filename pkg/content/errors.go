package content

import (
	"errors"
	"fmt"
)

var (
	ErrSeasonNotFound   = errors.New("season not found")
	ErrEpisodeNotFound  = errors.New("episode not found")
	ErrDuplicateSeason  = errors.New("season number already exists")
	ErrDuplicateEpisode = errors.New("episode number already exists")
)

// ValidationError describes why a document was rejected before being written.
// Missing is set when a required field was absent.
type ValidationError struct {
	Field   string
	Message string
	Missing bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField builds the error returned for an absent required field
func MissingField(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Missing: true,
	}
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err is, or wraps, a *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
