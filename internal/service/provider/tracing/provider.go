package tracing

import (
	"context"

	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ provider.MessageSender = (*Sender)(nil)

// Sender opens one span per message around the wrapped sender.
type Sender struct {
	sender provider.MessageSender
	tracer trace.Tracer
	name   string
}

func NewSender(name string, s provider.MessageSender) *Sender {
	return &Sender{
		sender: s,
		tracer: otel.Tracer("campaign-platform/sender"),
		name:   name,
	}
}

func (s *Sender) Send(ctx context.Context, phone, message string) error {
	ctx, span := s.tracer.Start(ctx, "MessageSender.Send",
		trace.WithAttributes(
			attribute.String("sender.name", s.name),
			attribute.String("message.phone", phone),
			attribute.Int("message.length", len([]rune(message))),
		))
	defer span.End()

	err := s.sender.Send(ctx, phone, message)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
