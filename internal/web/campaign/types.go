package campaign

import (
	"time"

	"gitee.com/flycash/campaign-platform/internal/domain"
)

type SendReq struct {
	Message string `json:"message"`
	// CSV holds recipient rows, phone then optional name.
	CSV          string             `json:"csv"`
	Recipients   []domain.Recipient `json:"recipients"`
	UseContacts  bool               `json:"use_contacts"`
	CampaignName string             `json:"campaign_name"`
	SendAt       *time.Time         `json:"send_at"`
}

type HistoryEntry struct {
	Time    string `json:"time"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
