package dispatch

import (
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
)

// SendRequest is one user-initiated send.
type SendRequest struct {
	Message  string
	Imported []domain.Recipient
	Contacts []domain.Contact
	// CampaignName defaults to "<Month> <Year> Campaign" when blank.
	CampaignName string
	// SendAt in the future schedules the send. The zero value means now.
	SendAt time.Time
}

type OutcomeKind string

const (
	OutcomeScheduled OutcomeKind = "SCHEDULED"
	OutcomeExecuted  OutcomeKind = "EXECUTED"
)

// Outcome of an accepted request. Job is set for Scheduled outcomes and
// Attempts for Executed ones.
type Outcome struct {
	Kind     OutcomeKind              `json:"kind"`
	Campaign domain.Campaign          `json:"campaign"`
	Job      *domain.ScheduledJob     `json:"job,omitempty"`
	Attempts []domain.DeliveryAttempt `json:"attempts,omitempty"`
}
