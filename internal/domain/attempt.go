package domain

import (
	"strings"
	"time"
)

// DeliveryStatus is the status half of an Outcome.
type DeliveryStatus string

const (
	DeliveryStatusSucceeded DeliveryStatus = "SUCCEEDED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

const (
	outcomeSuccessText = "Success"
	outcomeFailedText  = "Failed: "
)

// Outcome is the tagged result of one delivery: Success or Failed(reason).
type Outcome struct {
	Status DeliveryStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
}

func Succeeded() Outcome {
	return Outcome{Status: DeliveryStatusSucceeded}
}

func Failed(reason string) Outcome {
	return Outcome{Status: DeliveryStatusFailed, Reason: reason}
}

func (o Outcome) IsSuccess() bool {
	return o.Status == DeliveryStatusSucceeded
}

// String is the text used by the history export: "Success" or "Failed: <reason>".
func (o Outcome) String() string {
	if o.IsSuccess() {
		return outcomeSuccessText
	}
	return outcomeFailedText + o.Reason
}

// ParseOutcome is the inverse of Outcome.String. Text that is neither form is
// kept whole as the failure reason.
func ParseOutcome(s string) Outcome {
	if s == outcomeSuccessText {
		return Succeeded()
	}
	if reason, ok := strings.CutPrefix(s, outcomeFailedText); ok {
		return Failed(reason)
	}
	return Failed(s)
}

// DeliveryAttempt is one history entry. It is never modified after creation.
type DeliveryAttempt struct {
	Phone   string    `json:"phone"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Outcome Outcome   `json:"outcome"`
}
