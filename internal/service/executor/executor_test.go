package executor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/repository"
	"gitee.com/flycash/campaign-platform/internal/repository/dao"
	"gitee.com/flycash/campaign-platform/internal/service/history"
	historymocks "gitee.com/flycash/campaign-platform/internal/service/history/mocks"
	providermocks "gitee.com/flycash/campaign-platform/internal/service/provider/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestExecutorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExecutorTestSuite))
}

type ExecutorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	sender  *providermocks.MockMessageSender
	history history.Service
	now     time.Time
	exec    Executor
}

func (s *ExecutorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = providermocks.NewMockMessageSender(s.ctrl)
	s.history = history.NewService(repository.NewDeliveryAttemptRepository(dao.NewMemoryDeliveryAttemptDAO()))
	s.now = time.Date(2026, time.March, 9, 8, 0, 0, 0, time.Local)
	s.exec = NewExecutor(s.sender, s.history, WithClock(func() time.Time { return s.now }))
}

func (s *ExecutorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExecutorTestSuite) TestDeliver_Success() {
	t := s.T()
	s.sender.EXPECT().Send(gomock.Any(), "1001", "Hi Ann").Return(nil).Times(1)

	attempt := s.exec.Deliver(context.Background(), domain.Recipient{Name: "Ann", Phone: "1001"}, "Hi {name}")
	assert.Equal(t, domain.DeliveryAttempt{
		Phone:   "1001",
		Message: "Hi Ann",
		Time:    s.now,
		Outcome: domain.Succeeded(),
	}, attempt)

	all, err := s.history.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Success", all[0].Outcome.String())
}

func (s *ExecutorTestSuite) TestDeliver_TransportError() {
	t := s.T()
	s.sender.EXPECT().Send(gomock.Any(), "1002", "Hi ").
		Return(errors.New("no signal")).Times(1)

	attempt := s.exec.Deliver(context.Background(), domain.Recipient{Phone: "1002"}, "Hi {name}")
	assert.Equal(t, domain.Failed("no signal"), attempt.Outcome)

	all, err := s.history.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Failed: no signal", all[0].Outcome.String())
}

func (s *ExecutorTestSuite) TestDeliver_TransportPanic() {
	t := s.T()
	s.sender.EXPECT().Send(gomock.Any(), "1003", "boom").
		DoAndReturn(func(context.Context, string, string) error {
			panic("driver crashed")
		})

	attempt := s.exec.Deliver(context.Background(), domain.Recipient{Phone: "1003"}, "boom")
	assert.False(t, attempt.Outcome.IsSuccess())
	assert.Contains(t, attempt.Outcome.Reason, "driver crashed")

	all, err := s.history.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func (s *ExecutorTestSuite) TestDeliver_HistoryErrorSwallowed() {
	t := s.T()
	hist := historymocks.NewMockService(s.ctrl)
	exec := NewExecutor(s.sender, hist)

	s.sender.EXPECT().Send(gomock.Any(), "1001", "x").Return(nil)
	hist.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	attempt := exec.Deliver(context.Background(), domain.Recipient{Phone: "1001"}, "x")
	assert.True(t, attempt.Outcome.IsSuccess())
}

func (s *ExecutorTestSuite) TestDeliver_HistoryPanicRecovered() {
	t := s.T()
	hist := historymocks.NewMockService(s.ctrl)
	exec := NewExecutor(s.sender, hist)

	s.sender.EXPECT().Send(gomock.Any(), "1001", "x").Return(nil)
	hist.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.DeliveryAttempt) error {
			panic("store corrupted")
		})

	var attempt domain.DeliveryAttempt
	assert.NotPanics(t, func() {
		attempt = exec.Deliver(context.Background(), domain.Recipient{Phone: "1001"}, "x")
	})
	assert.True(t, attempt.Outcome.IsSuccess())
}

func (s *ExecutorTestSuite) TestDeliverBatch() {
	t := s.T()
	recipients := []domain.Recipient{
		{Name: "Ann", Phone: "1001"},
		{Name: "Bob", Phone: "1002"},
		{Name: "Ann", Phone: "1001"},
	}
	gomock.InOrder(
		s.sender.EXPECT().Send(gomock.Any(), "1001", "Hi Ann").Return(nil),
		s.sender.EXPECT().Send(gomock.Any(), "1002", "Hi Bob").
			Return(fmt.Errorf("%w: rejected", errs.ErrDeliveryFailed)),
		s.sender.EXPECT().Send(gomock.Any(), "1001", "Hi Ann").Return(nil),
	)

	var progress [][2]int
	attempts := s.exec.DeliverBatch(context.Background(), recipients, "Hi {name}", func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})

	require.Len(t, attempts, 3)
	assert.True(t, attempts[0].Outcome.IsSuccess())
	assert.Equal(t, domain.Failed("delivery failed: rejected"), attempts[1].Outcome)
	assert.True(t, attempts[2].Outcome.IsSuccess())
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)

	all, err := s.history.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func (s *ExecutorTestSuite) TestDeliverBatch_NilProgress() {
	t := s.T()
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	attempts := s.exec.DeliverBatch(context.Background(), []domain.Recipient{{Phone: "1"}, {Phone: "2"}}, "m", nil)
	assert.Len(t, attempts, 2)
}
