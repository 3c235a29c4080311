package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a query names a column the dataset
	// does not have. Recoverable: the caller asked for the wrong thing.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidArgument is returned for malformed query parameters,
	// such as a non-positive Top-N size.
	ErrInvalidArgument = errors.New("invalid argument")
)

// requireColumns fails with ErrUnknownColumn on the first missing column.
func requireColumns(view RecordView, columns ...string) error {
	for _, col := range columns {
		if !view.HasColumn(col) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
	}
	return nil
}
