package crud

import "github.com/pkg/errors"

var (
	// ErrBusy is returned when a submission for the same form is still in flight.
	ErrBusy = errors.New("a request for this form is already in progress")
	// ErrNotConfirmed is returned when a delete prompt was declined.
	ErrNotConfirmed = errors.New("delete not confirmed")
	// ErrNotFound is returned when selecting an id missing from the last fetched collection.
	ErrNotFound = errors.New("record not found")
)

// ValidationError is a local validation failure raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
