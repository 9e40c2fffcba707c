package domain

import "time"

// ScheduledJob is a future-dated send. The scheduler owns it until it fires.
type ScheduledJob struct {
	ID           string      `json:"id"`
	FireAt       time.Time   `json:"fire_at"`
	Recipients   []Recipient `json:"recipients"`
	Message      Template    `json:"message"`
	CampaignName string      `json:"campaign_name"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsDue reports whether the job must fire at now.
func (j ScheduledJob) IsDue(now time.Time) bool {
	return !j.FireAt.After(now)
}
