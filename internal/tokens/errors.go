package tokens

import "fmt"

// InvariantError represents a token table that fails its own self-validation.
// It is fatal at startup: the engine must refuse to run rather than evaluate
// pages against a corrupt rule set.
type InvariantError struct {
	Message string
	Cause   error
}

func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("token registry invariant violated: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("token registry invariant violated: %s", e.Message)
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}
