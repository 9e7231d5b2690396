// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//go:build wireinject

package posting

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/pkg/snowflake"
	"github.com/ecodeclub/jobboard/internal/posting/internal/job"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/posting/internal/service"
	"github.com/ecodeclub/jobboard/internal/posting/internal/web"
	"github.com/ecodeclub/jobboard/internal/profile"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	idGen snowflake.IDGenerator,
	profileModule *profile.Module) *Module {
	wire.Build(
		initDAO,
		cache.NewPostingCache,
		repository.NewPostingRepository,
		service.NewService,
		web.NewHandler,
		web.NewEmployerHandler,
		web.NewAdminHandler,
		job.BucketGauge,
		job.NewStatsJob,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.PostingDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPostingDAO(db)
}
