package newsletter

import "fmt"

type NewsletterError struct {
	Code    string
	Message string
}

func (e *NewsletterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrInvalidFraction = &NewsletterError{Code: "invalidFraction", Message: "scroll fraction must be between 0 and 1"}
	ErrInvalidEmail    = &NewsletterError{Code: "invalidEmail", Message: "a valid email address is required"}
	ErrDismissed       = &NewsletterError{Code: "newsletterDismissed", Message: "the newsletter prompt was dismissed for this session"}
	ErrNotVisible      = &NewsletterError{Code: "newsletterHidden", Message: "the newsletter prompt is not showing"}
)
