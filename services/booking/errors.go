package booking

import "fmt"

// WizardError is a refused wizard transition.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrProviderNotFound    = &WizardError{Code: "providerNotFound", Message: "no provider with that id"}
	ErrWrongStep           = &WizardError{Code: "wrongStep", Message: "the wizard is not on the step this action belongs to"}
	ErrInvalidDate         = &WizardError{Code: "invalidDate", Message: "date index must be between 0 and 6"}
	ErrDateRequired        = &WizardError{Code: "dateRequired", Message: "select a date before choosing a time"}
	ErrInvalidTimeSlot     = &WizardError{Code: "invalidTimeSlot", Message: "unknown time slot"}
	ErrSelectionIncomplete = &WizardError{Code: "selectionIncomplete", Message: "a date and a time are required to confirm"}
	ErrSubmissionPending   = &WizardError{Code: "submissionPending", Message: "a booking submission is in progress"}
)
