// Package metrics decorates a MessageSender with prometheus metrics.
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

var _ provider.MessageSender = (*Sender)(nil)

type Sender struct {
	sender              provider.MessageSender
	sendDurationSummary *prometheus.SummaryVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

// NewSender registers the sender metrics on reg. Pass prometheus.DefaultRegisterer
// to expose them on the governor endpoint.
func NewSender(name string, s provider.MessageSender, reg prometheus.Registerer) *Sender {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sender_send_duration_seconds",
			Help:       "message send latency in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"sender", "status"},
	)
	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sender_send_total",
			Help: "messages sent, by status",
		},
		[]string{"sender", "status"},
	)
	reg.MustRegister(sendDurationSummary, sendStatusCounter)

	return &Sender{
		sender:              s,
		sendDurationSummary: sendDurationSummary,
		sendStatusCounter:   sendStatusCounter,
		name:                name,
	}
}

func (s *Sender) Send(ctx context.Context, phone, message string) error {
	startTime := time.Now()
	err := s.sender.Send(ctx, phone, message)
	duration := time.Since(startTime).Seconds()

	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	s.sendStatusCounter.WithLabelValues(s.name, status).Inc()
	s.sendDurationSummary.WithLabelValues(s.name, status).Observe(duration)
	return err
}
