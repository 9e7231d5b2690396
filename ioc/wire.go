//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/application"
	"github.com/ecodeclub/jobboard/internal/notification"
	"github.com/ecodeclub/jobboard/internal/posting"
	"github.com/ecodeclub/jobboard/internal/profile"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		profile.InitModule,
		posting.InitModule,
		application.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*profile.Module), "Hdl"),
		wire.FieldsOf(new(*posting.Module), "Hdl", "EmployerHdl", "AdminHdl", "StatsJob"),
		wire.FieldsOf(new(*application.Module), "Hdl", "EmployerHdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		initCronJobs,
	)
	return new(App), nil
}
