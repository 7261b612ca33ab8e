package addressbook

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them, so
// callers can branch with errors.Is on either level.
var (
	ErrDuplicate        = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

var (
	ErrDuplicatePerson  = fmt.Errorf("person %w", ErrDuplicate)
	ErrDuplicateTable   = fmt.Errorf("table %w", ErrDuplicate)
	ErrDuplicateWedding = fmt.Errorf("wedding %w", ErrDuplicate)

	ErrPersonNotFound  = fmt.Errorf("person %w", ErrNotFound)
	ErrTableNotFound   = fmt.Errorf("table %w", ErrNotFound)
	ErrWeddingNotFound = fmt.Errorf("wedding %w", ErrNotFound)

	ErrTableFull = fmt.Errorf("table is full: %w", ErrCapacityExceeded)

	ErrNoCurrentWedding = errors.New("no current wedding is set")
)
