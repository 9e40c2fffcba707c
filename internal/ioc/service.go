package ioc

import (
	"context"
	"os"
	"time"

	"gitee.com/flycash/campaign-platform/internal/service/dispatch"
	"gitee.com/flycash/campaign-platform/internal/service/draft"
	"gitee.com/flycash/campaign-platform/internal/service/scheduler"
	"gitee.com/flycash/campaign-platform/internal/service/template"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
)

func InitScheduler(queue *scheduler.JobQueue, svc *dispatch.Service) *scheduler.Scheduler {
	type Config struct {
		Interval    time.Duration `yaml:"interval"`
		Concurrency int           `yaml:"concurrency"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("scheduler", &cfg); err != nil {
		panic(err)
	}
	return scheduler.NewScheduler(queue, svc,
		scheduler.WithInterval(cfg.Interval),
		scheduler.WithConcurrency(cfg.Concurrency))
}

// InitTemplateService preloads templates.file when it is set.
func InitTemplateService() template.Service {
	svc := template.NewService()
	path := econf.GetString("templates.file")
	if path == "" {
		return svc
	}
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	n, err := svc.LoadYAML(context.Background(), f)
	if err != nil {
		panic(err)
	}
	elog.DefaultLogger.Info("templates loaded", elog.String("file", path), elog.Int("count", n))
	return svc
}

func InitDraftService() draft.Service {
	return draft.NewService(cache.New(cache.NoExpiration, 0))
}

func InitRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
