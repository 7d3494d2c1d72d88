package models

// NewsletterStatus is the display state of the newsletter overlay form.
type NewsletterStatus string

const (
	NewsletterIdle    NewsletterStatus = "idle"
	NewsletterSuccess NewsletterStatus = "success"
)

// NewsletterState is the per-session state of the overlay. The dismissal
// flag itself lives under its own session key.
type NewsletterState struct {
	Visible      bool             `json:"visible"`
	Status       NewsletterStatus `json:"status"`
	SubmissionID string           `json:"submissionId,omitempty"`
	TaskID       string           `json:"taskId,omitempty"`
}

// NewsletterView is the response for the overlay endpoints.
type NewsletterView struct {
	Visible   bool             `json:"visible"`
	Dismissed bool             `json:"dismissed"`
	Status    NewsletterStatus `json:"status"`
	Threshold float64          `json:"threshold"`
	Headline  string           `json:"headline"`
	Pitch     string           `json:"pitch"`
}
