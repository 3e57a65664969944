package complaint

import (
	"errors"

	"clubportal/backend/internal/store"
)

// ErrNotFound is returned by every mutator targeting an unknown complaint
// id. The collection is left unchanged; the caller decides whether absence
// is fatal (a CLI treats it as failure, a best-effort UI sync may not).
var ErrNotFound = store.ErrComplaintNotFound

// ErrInvalidRating is returned when a feedback rating falls outside 1-5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// IsNotFound reports whether err means the target complaint does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrComplaintNotFound)
}
