package errs

import (
	"errors"
	"fmt"
)

// Shared error values. Callers match them with errors.Is.
var (
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrRejected marks a send request refused before any side effect.
	ErrRejected          = errors.New("send request rejected")
	ErrEmptyMessage      = fmt.Errorf("%w: message is empty", ErrRejected)
	ErrEmptyRecipientSet = fmt.Errorf("%w: no recipients found", ErrRejected)

	ErrDeliveryFailed    = errors.New("delivery failed")
	ErrSchedulerDispatch = errors.New("scheduled job dispatch failed")
	ErrJobNotFound       = errors.New("scheduled job not found")
	ErrJobFiring         = errors.New("scheduled job is firing")

	ErrContactNotFound  = errors.New("contact not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrDraftNotFound    = errors.New("draft not found")
)
