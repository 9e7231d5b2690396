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
package posting

import (
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/job"
	"github.com/ecodeclub/jobboard/internal/posting/internal/service"
	"github.com/ecodeclub/jobboard/internal/posting/internal/web"
)

type (
	Service         = service.Service
	Posting         = domain.Posting
	Content         = domain.Content
	Bucket          = domain.Bucket
	LockState       = domain.LockState
	Handler         = web.Handler
	EmployerHandler = web.EmployerHandler
	AdminHandler    = web.AdminHandler
	StatsJob        = job.StatsJob
)

const (
	LockStateOpen           = domain.LockStateOpen
	LockStateAdminLocked    = domain.LockStateAdminLocked
	LockStateEmployerClosed = domain.LockStateEmployerClosed
)

const (
	BucketUnknown        = domain.BucketUnknown
	BucketAvailable      = domain.BucketAvailable
	BucketPending        = domain.BucketPending
	BucketExpired        = domain.BucketExpired
	BucketAdminLocked    = domain.BucketAdminLocked
	BucketEmployerClosed = domain.BucketEmployerClosed
)

type Module struct {
	Svc         Service
	Hdl         *Handler
	EmployerHdl *EmployerHandler
	AdminHdl    *AdminHandler
	StatsJob    *StatsJob
}
