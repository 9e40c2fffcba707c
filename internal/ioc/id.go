package ioc

import (
	"time"

	"gitee.com/flycash/campaign-platform/internal/service/campaign"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() campaign.IDGenerator {
	type Config struct {
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("id", &cfg); err != nil {
		panic(err)
	}
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			return cfg.MachineID, nil
		},
	})
	if sf == nil {
		panic("sonyflake: invalid settings")
	}
	return sf
}
