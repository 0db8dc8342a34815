package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	// CategoryMerge exists for completeness; merge conflicts are reported
	// through the warning channel and never surface as errors.
	CategoryMerge Category = "merge"

	// CategoryType covers type mismatches: element-only operations applied
	// to other node kinds, or hook retrieval with the wrong payload type.
	CategoryType Category = "type"

	// CategoryLookup covers failed exact lookups: no handler for any
	// requested event name, no element for a selector.
	CategoryLookup Category = "lookup"

	// CategoryAdapter covers foreign-tree conversion failures.
	CategoryAdapter Category = "adapter"
)

// TreeError is a structured error carrying its category and, when known,
// the offending attribute, handler, hook, or tag name.
type TreeError struct {
	Category Category
	Message  string
	Name     string
	Wrapped  error
}

// Error implements the error interface.
func (e *TreeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Category, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TreeError) Unwrap() error {
	return e.Wrapped
}

// WithName attaches the offending name to the error.
func (e *TreeError) WithName(name string) *TreeError {
	e.Name = name
	return e
}

// Wrap wraps another error.
func (e *TreeError) Wrap(err error) *TreeError {
	e.Wrapped = err
	return e
}

// Newf creates a TreeError with a formatted message.
func Newf(category Category, format string, args ...any) *TreeError {
	return &TreeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// IsCategory reports whether err is (or wraps) a TreeError of the given
// category.
func IsCategory(err error, category Category) bool {
	var te *TreeError
	if stderrors.As(err, &te) {
		return te.Category == category
	}
	return false
}
