package dao

import (
	"context"
	"sync"
)

type MemoryCampaignDAO struct {
	mu   sync.RWMutex
	rows []Campaign
}

func NewMemoryCampaignDAO() *MemoryCampaignDAO {
	return &MemoryCampaignDAO{}
}

func (d *MemoryCampaignDAO) Insert(_ context.Context, c Campaign) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.Utime == 0 {
		c.Utime = c.Ctime
	}
	d.rows = append(d.rows, c)
	return nil
}

func (d *MemoryCampaignDAO) FindAll(_ context.Context) ([]Campaign, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]Campaign, len(d.rows))
	copy(res, d.rows)
	return res, nil
}
