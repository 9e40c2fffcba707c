package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/repository"
)

// TimeLayout is the timestamp format of the exported history.
const TimeLayout = "2006-01-02 15:04:05"

var exportHeader = []string{"Time", "Phone", "Message", "Status"}

// Service is the append-only log of delivery attempts.
//
//go:generate mockgen -source=./history.go -destination=./mocks/history.mock.go -package=historymocks Service
type Service interface {
	// Append records one attempt after all earlier ones.
	Append(ctx context.Context, a domain.DeliveryAttempt) error
	// All lists attempts in the order they were appended.
	All(ctx context.Context) ([]domain.DeliveryAttempt, error)
	// Export writes the history as CSV with a Time,Phone,Message,Status header.
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo repository.DeliveryAttemptRepository
}

func NewService(repo repository.DeliveryAttemptRepository) Service {
	return &service{repo: repo}
}

func (s *service) Append(ctx context.Context, a domain.DeliveryAttempt) error {
	return s.repo.Append(ctx, a)
}

func (s *service) All(ctx context.Context) ([]domain.DeliveryAttempt, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	attempts, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(exportHeader); err != nil {
		return err
	}
	for _, a := range attempts {
		err = cw.Write([]string{
			a.Time.Format(TimeLayout),
			a.Phone,
			a.Message,
			a.Outcome.String(),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseExport reads back what Export wrote. Times are read in the local zone
// at second precision.
func ParseExport(r io.Reader) ([]domain.DeliveryAttempt, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(exportHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read history export: %w", errs.ErrInvalidParameter, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", errs.ErrInvalidParameter)
	}
	for i, col := range exportHeader {
		if records[0][i] != col {
			return nil, fmt.Errorf("%w: unexpected header %q", errs.ErrInvalidParameter, records[0])
		}
	}

	res := make([]domain.DeliveryAttempt, 0, len(records)-1)
	for i, rec := range records[1:] {
		ts, err := time.ParseInLocation(TimeLayout, rec[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad time %q: %w", errs.ErrInvalidParameter, i+2, rec[0], err)
		}
		res = append(res, domain.DeliveryAttempt{
			Time:    ts,
			Phone:   rec[1],
			Message: rec[2],
			Outcome: domain.ParseOutcome(rec[3]),
		})
	}
	return res, nil
}
