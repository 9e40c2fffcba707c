package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type Campaign struct {
	// ID comes from the id generator, so rows sort by creation when IDs do.
	ID             uint64 `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"type:VARCHAR(256);NOT NULL"`
	Message        string `gorm:"type:TEXT;NOT NULL"`
	RecipientCount int64  `gorm:"NOT NULL"`
	Status         string `gorm:"type:ENUM('SCHEDULED','COMPLETED');NOT NULL"`
	Month          string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_month"`
	Ctime          int64
	Utime          int64
}

func (Campaign) TableName() string {
	return "campaigns"
}

type CampaignDAO interface {
	Insert(ctx context.Context, c Campaign) error
	// FindAll returns every campaign in insertion order.
	FindAll(ctx context.Context) ([]Campaign, error)
}

type campaignDAO struct {
	db *egorm.Component
}

func NewCampaignDAO(db *egorm.Component) CampaignDAO {
	return &campaignDAO{db: db}
}

func (d *campaignDAO) Insert(ctx context.Context, c Campaign) error {
	if c.Utime == 0 {
		c.Utime = c.Ctime
	}
	return d.db.WithContext(ctx).Create(&c).Error
}

func (d *campaignDAO) FindAll(ctx context.Context) ([]Campaign, error) {
	var res []Campaign
	err := d.db.WithContext(ctx).Order("ctime ASC, id ASC").Find(&res).Error
	return res, err
}
