package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Hook records command, pipeline and dial metrics for a go-redis client.
type Hook struct {
	commands         *prometheus.CounterVec
	commandDuration  *prometheus.SummaryVec
	pipelines        *prometheus.CounterVec
	pipelineDuration prometheus.Summary
	dials            *prometheus.CounterVec
}

func NewHook(reg prometheus.Registerer) *Hook {
	objectives := map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}
	h := &Hook{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign",
			Name:      "redis_commands_total",
			Help:      "Redis commands by name and status.",
		}, []string{"command", "status"}),
		commandDuration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  "campaign",
			Name:       "redis_command_duration_seconds",
			Help:       "Redis command latency.",
			Objectives: objectives,
		}, []string{"command"}),
		pipelines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign",
			Name:      "redis_pipelines_total",
			Help:      "Redis pipelines by status.",
		}, []string{"status"}),
		pipelineDuration: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  "campaign",
			Name:       "redis_pipeline_duration_seconds",
			Help:       "Redis pipeline latency.",
			Objectives: objectives,
		}),
		dials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign",
			Name:      "redis_dials_total",
			Help:      "Redis connection attempts by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(h.commands, h.commandDuration, h.pipelines, h.pipelineDuration, h.dials)
	return h
}

// statusOf treats redis.Nil as a successful miss.
func statusOf(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commands.WithLabelValues(cmd.Name(), statusOf(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.pipelineDuration.Observe(time.Since(start).Seconds())

		status := statusOf(err)
		for _, cmd := range cmds {
			if statusOf(cmd.Err()) == statusError {
				status = statusError
				break
			}
		}
		h.pipelines.WithLabelValues(status).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.dials.WithLabelValues(statusOf(err)).Inc()
		return conn, err
	}
}
