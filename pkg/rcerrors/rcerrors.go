package rcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnrepresentable      = errors.New("not representable in the target format")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrUndetectable         = errors.New("unable to detect format version")

	// query graph multiplicity
	ErrMultipleCategories = fmt.Errorf("QNode with multiple categories is not backwards-compatible: %w", ErrUnrepresentable)
	ErrMultiplePredicates = fmt.Errorf("QEdge with multiple predicates is not backwards-compatible: %w", ErrUnrepresentable)
)

// MissingField reports an absent or null required field of the named entity.
func MissingField(entity, field string) error {
	return fmt.Errorf("%s.%s: %w", entity, field, ErrMissingRequiredField)
}
