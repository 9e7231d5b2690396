package main

import (
	"context"

	"github.com/ecodeclub/jobboard/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	// ego.New 会加载配置
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	// 启动消费者，退出时一并停掉
	for i := range app.Consumers {
		app.Consumers[i].Start(ctx)
	}
	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Run()
	cancel()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
	if err = tp.Shutdown(context.Background()); err != nil {
		elog.DefaultLogger.Error("关闭 TracerProvider 失败", elog.FieldErr(err))
	}
}
