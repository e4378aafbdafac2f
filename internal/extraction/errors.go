package extraction

import "fmt"

// UnreadableError reports a document whose bytes could not be decoded into
// text. Extraction degrades to empty text toward scoring callers; the type
// exists so the boundary can log the cause instead of swallowing it.
type UnreadableError struct {
	Path  string
	Cause error
}

func (e *UnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("unreadable document %s", e.Path)
}

func (e *UnreadableError) Unwrap() error {
	return e.Cause
}
