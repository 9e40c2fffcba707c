package ioc

import (
	"gitee.com/flycash/campaign-platform/internal/web/campaign"
	"gitee.com/flycash/campaign-platform/internal/web/library"
	"gitee.com/flycash/campaign-platform/internal/web/middleware"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func InitWebServer(campaignHdl *campaign.Handler, libraryHdl *library.Handler) *egin.Component {
	type Config struct {
		JWT struct {
			Enabled bool   `yaml:"enabled"`
			Key     string `yaml:"key"`
		} `yaml:"jwt"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("web", &cfg); err != nil {
		panic(err)
	}

	server := egin.Load("server.http").Build()
	api := server.Group("/api")
	if cfg.JWT.Enabled {
		api.Use(middleware.NewJwtAuth(cfg.JWT.Key).Build())
	}
	campaignHdl.RegisterRoutes(api)
	libraryHdl.RegisterRoutes(api)
	return server
}
