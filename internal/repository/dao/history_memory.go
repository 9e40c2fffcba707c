package dao

import (
	"context"
	"sync"
)

// MemoryDeliveryAttemptDAO keeps the history in process memory.
type MemoryDeliveryAttemptDAO struct {
	mu   sync.RWMutex
	rows []DeliveryAttempt
}

func NewMemoryDeliveryAttemptDAO() *MemoryDeliveryAttemptDAO {
	return &MemoryDeliveryAttemptDAO{}
}

func (d *MemoryDeliveryAttemptDAO) Insert(_ context.Context, a DeliveryAttempt) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	a.ID = int64(len(d.rows) + 1)
	if a.Ctime == 0 {
		a.Ctime = a.SendTime
	}
	d.rows = append(d.rows, a)
	return nil
}

func (d *MemoryDeliveryAttemptDAO) FindAll(_ context.Context) ([]DeliveryAttempt, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]DeliveryAttempt, len(d.rows))
	copy(res, d.rows)
	return res, nil
}
