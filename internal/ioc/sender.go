package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/campaign-platform/internal/pkg/ratelimit"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"gitee.com/flycash/campaign-platform/internal/service/provider/adb"
	"gitee.com/flycash/campaign-platform/internal/service/provider/console"
	"gitee.com/flycash/campaign-platform/internal/service/provider/metrics"
	ratelimitsender "gitee.com/flycash/campaign-platform/internal/service/provider/ratelimit"
	"gitee.com/flycash/campaign-platform/internal/service/provider/sms"
	"gitee.com/flycash/campaign-platform/internal/service/provider/tracing"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	SenderConsole = "console"
	SenderADB     = "adb"
	SenderAliyun  = "aliyun"
	SenderTencent = "tencent"
)

type SenderConfig struct {
	Type string `yaml:"type"`
	ADB  struct {
		Binary string `yaml:"binary"`
	} `yaml:"adb"`
	SMS struct {
		SignName   string `yaml:"signName"`
		TemplateID string `yaml:"templateId"`
	} `yaml:"sms"`
	RateLimit struct {
		Enabled  bool          `yaml:"enabled"`
		Key      string        `yaml:"key"`
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
	} `yaml:"rateLimit"`
}

// InitMessageSender builds the configured transport wrapped, innermost first,
// by the rate limiter, metrics and tracing.
func InitMessageSender(cmd *redis.Client, reg prometheus.Registerer) provider.MessageSender {
	var cfg SenderConfig
	if err := econf.UnmarshalKey("sender", &cfg); err != nil {
		panic(err)
	}
	if cfg.Type == "" {
		cfg.Type = SenderConsole
	}

	var s provider.MessageSender
	switch cfg.Type {
	case SenderConsole:
		s = console.NewSender()
	case SenderADB:
		s = adb.NewSender(cfg.ADB.Binary)
	case SenderAliyun:
		s = sms.NewSender(SenderAliyun, cfg.SMS.SignName, cfg.SMS.TemplateID, InitAliyunSms())
	case SenderTencent:
		s = sms.NewSender(SenderTencent, cfg.SMS.SignName, cfg.SMS.TemplateID, InitTencentSms())
	default:
		panic(fmt.Sprintf("unknown sender type %q", cfg.Type))
	}

	if cfg.RateLimit.Enabled {
		key := cfg.RateLimit.Key
		if key == "" {
			key = "campaign:sender:" + cfg.Type
		}
		limiter := ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.RateLimit.Interval, cfg.RateLimit.Rate)
		s = ratelimitsender.NewSender(key, s, limiter)
	}
	s = metrics.NewSender(cfg.Type, s, reg)
	return tracing.NewSender(cfg.Type, s)
}
