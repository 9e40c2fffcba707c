package provider

import (
	"context"
)

// MessageSender is the transport that hands one rendered message to one phone.
// A nil error means the transport accepted the message.
//
//go:generate mockgen -source=./types.go -destination=./mocks/sender.mock.go -package=providermocks MessageSender
type MessageSender interface {
	Send(ctx context.Context, phone, message string) error
}

// SenderFunc adapts a function to MessageSender.
type SenderFunc func(ctx context.Context, phone, message string) error

func (f SenderFunc) Send(ctx context.Context, phone, message string) error {
	return f(ctx, phone, message)
}
