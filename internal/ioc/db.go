package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/campaign-platform/internal/pkg/retry"
	"gitee.com/flycash/campaign-platform/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

// InitDB returns nil unless storage.type is mysql.
func InitDB() *egorm.Component {
	if econf.GetString("storage.type") != StorageMySQL {
		return nil
	}
	cfg := retry.DefaultConfig()
	if econf.Get("mysql.retry") != nil {
		if err := econf.UnmarshalKey("mysql.retry", &cfg); err != nil {
			panic(err)
		}
	}
	db := egorm.Load("mysql").Build()
	WaitForDBSetup(db, cfg)
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup pings db until it answers and panics once retries run out.
func WaitForDBSetup(db *egorm.Component, cfg retry.Config) {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	strategy, err := retry.NewRetry(cfg)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("database is not reachable")
		}
		elog.DefaultLogger.Warn("waiting for database", elog.String("retryIn", next.String()), elog.FieldErr(err))
		time.Sleep(next)
	}
}

func InitDeliveryAttemptDAO(db *egorm.Component) dao.DeliveryAttemptDAO {
	if db == nil {
		return dao.NewMemoryDeliveryAttemptDAO()
	}
	return dao.NewDeliveryAttemptDAO(db)
}

func InitCampaignDAO(db *egorm.Component) dao.CampaignDAO {
	if db == nil {
		return dao.NewMemoryCampaignDAO()
	}
	return dao.NewCampaignDAO(db)
}
