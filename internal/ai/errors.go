package ai

import "fmt"

// AnalysisError wraps any failure of an analysis operation: backend
// errors, schema violations and decode failures all surface as one
// recoverable error type.
type AnalysisError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s analysis failed: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s analysis failed: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
