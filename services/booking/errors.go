package booking

import (
	"errors"
	"fmt"

	"dbswash/models"
)

// Session lifecycle errors.
var (
	ErrSessionNotFound    = errors.New("booking session not found or expired")
	ErrSessionSubmitted   = errors.New("booking session already submitted")
	ErrSubmitInFlight     = errors.New("submission already in progress")
	ErrNotOnFinalStep     = errors.New("booking is not on the payment step")
	ErrAlreadyOnFinalStep = errors.New("payment step is final; submit to complete the booking")
)

// ValidationError reports a failed step validation. Field-level failures are
// keyed by field name; the step-2 cross-field rule carries a single notice
// instead.
type ValidationError struct {
	Step   int
	Fields models.FieldErrors
	Notice *models.FieldError
}

func (e *ValidationError) Error() string {
	if e.Notice != nil {
		return fmt.Sprintf("step %d validation failed: %s", e.Step, e.Notice.Message)
	}
	return fmt.Sprintf("step %d validation failed: %d invalid field(s)", e.Step, len(e.Fields))
}

// SubmissionError wraps a payment-processor failure. The draft reverts to
// idle and keeps all entered data; the caller may retry.
type SubmissionError struct {
	Reason error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %v", models.ErrCodeSubmissionFailure, e.Reason)
}

func (e *SubmissionError) Unwrap() error {
	return e.Reason
}
