package models

import "time"

// WizardStep is the position of the booking wizard.
type WizardStep string

const (
	StepChoosingProvider WizardStep = "choosingProvider"
	StepChoosingSchedule WizardStep = "choosingSchedule"
	StepConfirmed        WizardStep = "confirmed"
)

// Number is the 1-based step shown in the wizard header.
func (s WizardStep) Number() int {
	switch s {
	case StepChoosingSchedule:
		return 2
	case StepConfirmed:
		return 3
	default:
		return 1
	}
}

// BookingSession holds the wizard selections of one visitor. A nil DateIndex
// means no date is selected; 0 is today.
type BookingSession struct {
	Step         WizardStep `json:"step"`
	ProviderID   *int       `json:"providerId,omitempty"`
	DateIndex    *int       `json:"dateIndex,omitempty"`
	TimeSlot     string     `json:"timeSlot,omitempty"`
	MountedAt    time.Time  `json:"mountedAt"`
	SubmissionID string     `json:"submissionId,omitempty"`
	TaskID       string     `json:"taskId,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
}

// Pending reports whether a simulated submission is in flight.
func (s *BookingSession) Pending() bool {
	return s.SubmissionID != ""
}

// DateSlot is one of the seven selectable days.
type DateSlot struct {
	Index    int    `json:"index"`
	Day      string `json:"day"`
	Date     int    `json:"date"`
	ISO      string `json:"iso"`
	Selected bool   `json:"selected"`
}

// TimeSlotOption is one of the fixed consultation times.
type TimeSlotOption struct {
	Slot     string `json:"slot"`
	Selected bool   `json:"selected"`
	Enabled  bool   `json:"enabled"`
}

// BookingConfirmation is what the confirmed step shows.
type BookingConfirmation struct {
	ProviderName string `json:"providerName"`
	TimeSlot     string `json:"timeSlot"`
	Date         string `json:"date"`
	Message      string `json:"message"`
}

// BookingView is the response for the booking page.
type BookingView struct {
	Step         WizardStep           `json:"step"`
	StepNumber   int                  `json:"stepNumber"`
	TotalSteps   int                  `json:"totalSteps"`
	Providers    []Provider           `json:"providers"`
	Provider     *Provider            `json:"provider,omitempty"`
	Dates        []DateSlot           `json:"dates"`
	TimeSlots    []TimeSlotOption     `json:"timeSlots"`
	DateIndex    *int                 `json:"dateIndex"`
	TimeSlot     *string              `json:"timeSlot"`
	TimeEnabled  bool                 `json:"timeEnabled"`
	CanConfirm   bool                 `json:"canConfirm"`
	Pending      bool                 `json:"pending"`
	ConfirmPrice string               `json:"confirmPrice,omitempty"`
	Confirmation *BookingConfirmation `json:"confirmation,omitempty"`
}
