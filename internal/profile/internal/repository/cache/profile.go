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
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/profile/internal/domain"
	"github.com/pkg/errors"
)

var ErrProfileNotFound = errors.New("个人资料缓存没找到")

const profileExpiration = 24 * time.Hour

type ProfileCache interface {
	Set(ctx context.Context, p domain.Profile) error
	Get(ctx context.Context, uid int64) (domain.Profile, error)
	Del(ctx context.Context, uid int64) error
}

type profileCache struct {
	ec ecache.Cache
}

func NewProfileCache(ec ecache.Cache) ProfileCache {
	return &profileCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "profile:",
		},
	}
}

func (c *profileCache) Set(ctx context.Context, p domain.Profile) error {
	val, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化个人资料失败")
	}
	return c.ec.Set(ctx, c.key(p.Uid), string(val), profileExpiration)
}

func (c *profileCache) Get(ctx context.Context, uid int64) (domain.Profile, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Profile{}, ErrProfileNotFound
	}
	var p domain.Profile
	err := val.JSONScan(&p)
	return p, errors.Wrap(err, "读取个人资料缓存失败")
}

func (c *profileCache) Del(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return err
}

func (c *profileCache) key(uid int64) string {
	return fmt.Sprintf("%d", uid)
}
