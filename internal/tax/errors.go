package tax

import "fmt"

// TableError represents a static rate table that fails self-validation.
type TableError struct {
	Message string
	Cause   error
}

func (e *TableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tax table error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tax table error: %s", e.Message)
}

func (e *TableError) Unwrap() error {
	return e.Cause
}
