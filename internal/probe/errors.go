package probe

import "fmt"

// Error represents a page probe failure: navigation timeout, the DOM never
// stabilizing, or the browser crashing. The audit runner recovers from it at
// the per-page level; it never aborts the run.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("probe failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("probe failed for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
