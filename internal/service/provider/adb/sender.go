package adb

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

const defaultBinary = "adb"

var _ provider.MessageSender = (*Sender)(nil)

// Runner executes a program with the given argv and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// Sender sends SMS through an Android device attached over adb, using the
// isms service call. Arguments are passed as argv so message text is never
// interpreted by a shell.
type Sender struct {
	binary string
	run    Runner
	logger *elog.Component
}

type Option func(s *Sender)

func WithRunner(run Runner) Option {
	return func(s *Sender) {
		s.run = run
	}
}

func NewSender(binary string, opts ...Option) *Sender {
	if binary == "" {
		binary = defaultBinary
	}
	s := &Sender{
		binary: binary,
		run:    execRunner,
		logger: elog.DefaultLogger.With(elog.String("sender", "adb")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sender) Send(ctx context.Context, phone, message string) error {
	out, err := s.run(ctx, s.binary, Args(phone, message)...)
	if err != nil {
		s.logger.Error("adb send failed",
			elog.String("phone", phone),
			elog.String("output", string(out)),
			elog.FieldErr(err))
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			return fmt.Errorf("%w: %w", errs.ErrDeliveryFailed, err)
		}
		return fmt.Errorf("%w: %w: %s", errs.ErrDeliveryFailed, err, detail)
	}
	return nil
}

// Args builds the adb argv for one message.
func Args(phone, message string) []string {
	return []string{
		"shell", "service", "call", "isms", "7", "i32", "0",
		"s16", "com.android.mms.service",
		"s16", phone,
		"s16", "null",
		"s16", message,
		"s16", "null",
		"s16", "null",
	}
}
