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

package ioc

import (
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobboard/internal/email"
	"github.com/ecodeclub/jobboard/internal/email/aliyun"
	emailretry "github.com/ecodeclub/jobboard/internal/email/retry"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	type Config struct {
		Aliyun aliyun.Config `yaml:"aliyun"`
		Retry  struct {
			Interval   time.Duration `yaml:"interval"`
			MaxRetries int32         `yaml:"maxRetries"`
		} `yaml:"retry"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	dm, err := aliyun.NewDirectMail(cfg.Aliyun)
	if err != nil {
		panic(err)
	}
	interval, maxRetries := cfg.Retry.Interval, cfg.Retry.MaxRetries
	if interval <= 0 {
		interval = time.Second
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	// 提前校验参数，后续创建不会再出错
	if _, err = retry.NewFixedIntervalRetryStrategy(interval, maxRetries); err != nil {
		panic(err)
	}
	return emailretry.NewService(dm, func() retry.Strategy {
		s, _ := retry.NewFixedIntervalRetryStrategy(interval, maxRetries)
		return s
	})
}
