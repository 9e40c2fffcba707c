package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// DeliveryAttempt is one row of the append-only delivery history.
type DeliveryAttempt struct {
	ID      int64  `gorm:"primaryKey;autoIncrement;comment:'insertion order'"`
	Phone   string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_phone"`
	Message string `gorm:"type:TEXT;NOT NULL;comment:'rendered message'"`
	Status  string `gorm:"type:ENUM('SUCCEEDED','FAILED');NOT NULL"`
	Reason  string `gorm:"type:TEXT;comment:'failure reason'"`
	// SendTime is when the send was attempted, in milliseconds.
	SendTime int64 `gorm:"NOT NULL"`
	Ctime    int64
}

func (DeliveryAttempt) TableName() string {
	return "delivery_attempts"
}

type DeliveryAttemptDAO interface {
	Insert(ctx context.Context, a DeliveryAttempt) error
	// FindAll returns every row in insertion order.
	FindAll(ctx context.Context) ([]DeliveryAttempt, error)
}

type deliveryAttemptDAO struct {
	db *egorm.Component
}

func NewDeliveryAttemptDAO(db *egorm.Component) DeliveryAttemptDAO {
	return &deliveryAttemptDAO{db: db}
}

func (d *deliveryAttemptDAO) Insert(ctx context.Context, a DeliveryAttempt) error {
	a.ID = 0
	if a.Ctime == 0 {
		a.Ctime = a.SendTime
	}
	return d.db.WithContext(ctx).Create(&a).Error
}

func (d *deliveryAttemptDAO) FindAll(ctx context.Context) ([]DeliveryAttempt, error) {
	var res []DeliveryAttempt
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}
