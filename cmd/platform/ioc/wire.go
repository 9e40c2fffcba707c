//go:build wireinject

package ioc

import (
	"gitee.com/flycash/campaign-platform/internal/ioc"
	"gitee.com/flycash/campaign-platform/internal/repository"
	"gitee.com/flycash/campaign-platform/internal/service/campaign"
	"gitee.com/flycash/campaign-platform/internal/service/contact"
	"gitee.com/flycash/campaign-platform/internal/service/dispatch"
	"gitee.com/flycash/campaign-platform/internal/service/executor"
	"gitee.com/flycash/campaign-platform/internal/service/history"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"gitee.com/flycash/campaign-platform/internal/service/scheduler"
	campaignweb "gitee.com/flycash/campaign-platform/internal/web/campaign"
	"gitee.com/flycash/campaign-platform/internal/web/library"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRegisterer,
		ioc.InitRedisClient,
		ioc.InitIDGenerator,
		ioc.InitMessageSender,
	)
	historySvcSet = wire.NewSet(
		history.NewService,
		repository.NewDeliveryAttemptRepository,
		ioc.InitDeliveryAttemptDAO,
	)
	campaignSvcSet = wire.NewSet(
		newCampaignService,
		repository.NewCampaignRepository,
		ioc.InitCampaignDAO,
	)
	dispatchSvcSet = wire.NewSet(
		newExecutor,
		newDispatchService,
		scheduler.NewJobQueue,
		ioc.InitScheduler,
		ioc.InitTasks,
	)
	librarySvcSet = wire.NewSet(
		contact.NewService,
		ioc.InitTemplateService,
		ioc.InitDraftService,
	)
)

func newCampaignService(repo repository.CampaignRepository, idGen campaign.IDGenerator) campaign.Service {
	return campaign.NewService(repo, idGen)
}

func newExecutor(sender provider.MessageSender, historySvc history.Service) executor.Executor {
	return executor.NewExecutor(sender, historySvc)
}

func newDispatchService(queue *scheduler.JobQueue, exec executor.Executor, campaigns campaign.Service) *dispatch.Service {
	return dispatch.NewService(queue, exec, campaigns)
}

func InitApp() *ioc.App {
	wire.Build(
		BaseSet,
		historySvcSet,
		campaignSvcSet,
		dispatchSvcSet,
		librarySvcSet,

		campaignweb.NewHandler,
		library.NewHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
