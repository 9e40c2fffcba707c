package domain

import (
	"sort"
	"time"
)

// MonthLayout formats the calendar-month group label, e.g. "October 2026".
const MonthLayout = "January 2006"

type CampaignStatus string

const (
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

func (s CampaignStatus) String() string {
	return string(s)
}

// Campaign is a named, dated batch of sends sharing one template. Entries with
// the same name are distinct and never merged.
type Campaign struct {
	ID             uint64         `json:"id"`
	Name           string         `json:"name"`
	Message        string         `json:"message"`
	RecipientCount int            `json:"recipient_count"`
	Status         CampaignStatus `json:"status"`
	Month          string         `json:"month"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MonthGroup is the campaigns of one calendar month, newest first.
type MonthGroup struct {
	Month     string     `json:"month"`
	Campaigns []Campaign `json:"campaigns"`
}

func MonthLabel(t time.Time) string {
	return t.Format(MonthLayout)
}

// DefaultCampaignName is used when the caller supplies no campaign name.
func DefaultCampaignName(now time.Time) string {
	return MonthLabel(now) + " Campaign"
}

// SortCampaignsNewestFirst orders by CreatedAt descending. Ties keep their
// recording order reversed, so the latest record still comes first.
func SortCampaignsNewestFirst(cs []Campaign) {
	reverse(cs)
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].CreatedAt.After(cs[j].CreatedAt)
	})
}

func reverse(cs []Campaign) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}
