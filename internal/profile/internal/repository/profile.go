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
package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/profile/internal/domain"
	"github.com/ecodeclub/jobboard/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/profile/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Save(ctx context.Context, p domain.Profile) error
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	FindByUids(ctx context.Context, uids []int64) ([]domain.Profile, error)
}

type profileRepository struct {
	dao    dao.ProfileDAO
	cache  cache.ProfileCache
	logger *elog.Component
}

func NewProfileRepository(d dao.ProfileDAO, c cache.ProfileCache) ProfileRepository {
	return &profileRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *profileRepository) Save(ctx context.Context, p domain.Profile) error {
	err := r.dao.Upsert(ctx, dao.Profile{
		Uid:        p.Uid,
		Nickname:   p.Nickname,
		Email:      p.Email,
		Industry:   p.Industry,
		Experience: p.Experience,
	})
	if err != nil {
		return bizerr.Dependency(err)
	}
	if err = r.cache.Del(ctx, p.Uid); err != nil {
		r.logger.Warn("删除个人资料缓存失败", elog.Int64("uid", p.Uid), elog.FieldErr(err))
	}
	return nil
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := r.cache.Get(ctx, uid)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, cache.ErrProfileNotFound) {
		r.logger.Warn("查询个人资料缓存失败", elog.Int64("uid", uid), elog.FieldErr(err))
	}
	entity, err := r.dao.FindByUid(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Profile{}, bizerr.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, bizerr.Dependency(err)
	}
	p = r.toDomain(entity)
	if err = r.cache.Set(ctx, p); err != nil {
		r.logger.Warn("回写个人资料缓存失败", elog.Int64("uid", uid), elog.FieldErr(err))
	}
	return p, nil
}

func (r *profileRepository) FindByUids(ctx context.Context, uids []int64) ([]domain.Profile, error) {
	res, err := r.dao.FindByUids(ctx, uids)
	if err != nil {
		return nil, bizerr.Dependency(err)
	}
	return slice.Map(res, func(idx int, src dao.Profile) domain.Profile {
		return r.toDomain(src)
	}), nil
}

func (r *profileRepository) toDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		Uid:        p.Uid,
		Nickname:   p.Nickname,
		Email:      p.Email,
		Industry:   p.Industry,
		Experience: p.Experience,
		Utime:      p.Utime,
	}
}
