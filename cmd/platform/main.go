package main

import (
	"context"

	"gitee.com/flycash/campaign-platform/cmd/platform/ioc"
	prodioc "gitee.com/flycash/campaign-platform/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := prodioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("shutdown zipkin tracer", elog.FieldErr(err))
		}
	}()

	app := ioc.InitApp()
	app.StartTasks(ctx)

	if err := ego.New().Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
