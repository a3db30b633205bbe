package todo

import "errors"

// Domain errors for todo service
var (
	// Validation errors
	ErrInvalidTodoID = errors.New("invalid todo ID")
	ErrInvalidSkip   = errors.New("skip must be a non-negative integer")
	ErrInvalidLimit  = errors.New("limit must be a non-negative integer")

	// Business logic errors
	ErrTodoNotFound = errors.New("todo not found")
)

var validationErrors = []error{
	ErrInvalidTodoID,
	ErrInvalidSkip,
	ErrInvalidLimit,
}

// IsValidationError reports whether err is a request validation failure
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
