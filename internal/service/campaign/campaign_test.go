package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/repository"
	"gitee.com/flycash/campaign-platform/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqID struct {
	next uint64
	err  error
}

func (g *seqID) NextID() (uint64, error) {
	if g.err != nil {
		return 0, g.err
	}
	g.next++
	return g.next, nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func newService(clock *fakeClock, gen IDGenerator) Service {
	return NewService(repository.NewCampaignRepository(dao.NewMemoryCampaignDAO()), gen, WithClock(clock.Now))
}

func TestService_Record(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, time.March, 9, 8, 0, 0, 0, time.Local)}
	svc := newService(clock, &seqID{})

	c, err := svc.Record(ctx, "Spring", "Hi {name}", 2, domain.CampaignStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.ID)
	assert.Equal(t, "March 2026", c.Month)
	assert.Equal(t, 2, c.RecipientCount)
	assert.Equal(t, domain.CampaignStatusCompleted, c.Status)
	assert.True(t, clock.t.Equal(c.CreatedAt))

	byMonth, err := svc.ListByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth["March 2026"], 1)
	assert.Equal(t, "Spring", byMonth["March 2026"][0].Name)
}

func TestService_RecordIDError(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Now()}
	svc := newService(clock, &seqID{err: errors.New("clock moved backwards")})
	_, err := svc.Record(context.Background(), "x", "y", 1, domain.CampaignStatusCompleted)
	assert.ErrorContains(t, err, "clock moved backwards")
}

func TestService_ListByMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, time.February, 27, 9, 0, 0, 0, time.Local)}
	svc := newService(clock, &seqID{})

	_, err := svc.Record(ctx, "Feb", "m", 1, domain.CampaignStatusCompleted)
	require.NoError(t, err)
	clock.t = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	_, err = svc.Record(ctx, "Early March", "m", 1, domain.CampaignStatusCompleted)
	require.NoError(t, err)
	clock.t = clock.t.Add(time.Hour)
	_, err = svc.Record(ctx, "Dup", "m", 1, domain.CampaignStatusScheduled)
	require.NoError(t, err)
	_, err = svc.Record(ctx, "Dup", "m", 1, domain.CampaignStatusCompleted)
	require.NoError(t, err)

	byMonth, err := svc.ListByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth, 2)
	require.Len(t, byMonth["February 2026"], 1)

	march := byMonth["March 2026"]
	require.Len(t, march, 3)
	assert.Equal(t, uint64(4), march[0].ID)
	assert.Equal(t, domain.CampaignStatusCompleted, march[0].Status)
	assert.Equal(t, uint64(3), march[1].ID)
	assert.Equal(t, domain.CampaignStatusScheduled, march[1].Status)
	assert.Equal(t, "Early March", march[2].Name)
	for i := 1; i < len(march); i++ {
		assert.False(t, march[i].CreatedAt.After(march[i-1].CreatedAt))
	}

	groups, err := svc.Groups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "March 2026", groups[0].Month)
	assert.Equal(t, "February 2026", groups[1].Month)
	assert.Equal(t, march, groups[0].Campaigns)
}

func TestSortGroupsNewestFirst(t *testing.T) {
	t.Parallel()
	groups := []domain.MonthGroup{
		{Month: "December 2025"},
		{Month: "bogus"},
		{Month: "January 2026"},
		{Month: "March 2024"},
	}
	sortGroupsNewestFirst(groups)
	months := make([]string, 0, len(groups))
	for _, g := range groups {
		months = append(months, g.Month)
	}
	assert.Equal(t, []string{"January 2026", "December 2025", "March 2024", "bogus"}, months)
}
