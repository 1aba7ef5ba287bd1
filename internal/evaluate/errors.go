package evaluate

import "fmt"

// ParseError represents HTML that could not be parsed for semantic evaluation.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("evaluation parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("evaluation parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
