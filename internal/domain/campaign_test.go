package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthLabel(t *testing.T) {
	t.Parallel()
	ts := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 2026", MonthLabel(ts))
	assert.Equal(t, "March 2026 Campaign", DefaultCampaignName(ts))
}

func TestSortCampaignsNewestFirst(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	cs := []Campaign{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(time.Hour)},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
		{ID: 4, CreatedAt: base.Add(-time.Hour)},
	}
	SortCampaignsNewestFirst(cs)
	ids := make([]uint64, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint64{3, 2, 1, 4}, ids)
}
