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
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/snowflake"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./posting.go -package=postingmocks -destination=../../mocks/posting.mock.go Service
type Service interface {
	// Create 只有招聘方可以发布，发布后等待审核
	Create(ctx context.Context, act actor.Actor, p domain.Posting) (domain.Posting, error)
	// Edit 编辑之后重新进入审核，并且重新开放
	Edit(ctx context.Context, act actor.Actor, p domain.Posting) (domain.Posting, error)
	Approve(ctx context.Context, act actor.Actor, id int64) error
	// Lock 管理员锁定任意职位，招聘方只能关闭自己的职位
	Lock(ctx context.Context, act actor.Actor, id int64) error
	// Unlock 招聘方不能解除管理员的锁定。已经开放的职位直接返回
	Unlock(ctx context.Context, act actor.Actor, id int64) error
	Delete(ctx context.Context, act actor.Actor, id int64) error

	// Detail 不走缓存，其它模块校验职位状态时使用
	Detail(ctx context.Context, id int64) (domain.Posting, error)
	// PublicDetail 走缓存，仅用于展示
	PublicDetail(ctx context.Context, id int64) (domain.Posting, error)
	// GetByIDs 不存在的职位不会出现在结果中
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Posting, error)
	List(ctx context.Context, q domain.Query, offset, limit int) (int64, []domain.Posting, error)
	// Stats 统计每个 Bucket 下的职位数量
	Stats(ctx context.Context) (map[domain.Bucket]int64, error)
}

type service struct {
	repo   repository.PostingRepository
	idGen  snowflake.IDGenerator
	now    func() time.Time
	logger *elog.Component
}

func NewService(repo repository.PostingRepository, idGen snowflake.IDGenerator) Service {
	return &service{
		repo:   repo,
		idGen:  idGen,
		now:    time.Now,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("posting.service")),
	}
}

func (s *service) Create(ctx context.Context, act actor.Actor, p domain.Posting) (domain.Posting, error) {
	if !act.IsEmployer() {
		return domain.Posting{}, bizerr.ErrNotEmployer
	}
	if err := p.Validate(); err != nil {
		return domain.Posting{}, err
	}
	id, err := s.idGen.Generate(snowflake.BizPosting)
	if err != nil {
		return domain.Posting{}, fmt.Errorf("生成职位 ID 失败: %w", err)
	}
	now := s.now()
	p.ID = id.Int64()
	p.EmployerID = act.Uid
	p.Approved = false
	p.LockState = domain.LockStateOpen
	p.Ctime = now
	p.Utime = now
	_, err = s.repo.Create(ctx, p)
	if err != nil {
		return domain.Posting{}, err
	}
	s.logger.Info("发布职位", elog.Int64("id", p.ID), elog.Int64("employer", act.Uid))
	return p, nil
}

func (s *service) Edit(ctx context.Context, act actor.Actor, p domain.Posting) (domain.Posting, error) {
	if err := p.Validate(); err != nil {
		return domain.Posting{}, err
	}
	old, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return domain.Posting{}, err
	}
	if !s.owns(act, old) {
		return domain.Posting{}, bizerr.ErrNotOwner
	}
	now := s.now()
	p.EmployerID = old.EmployerID
	p.Approved = false
	p.LockState = domain.LockStateOpen
	p.Ctime = now
	p.Utime = now
	ok, err := s.repo.Edit(ctx, p)
	if err != nil {
		return domain.Posting{}, err
	}
	if !ok {
		// 发布者不会变化，职位还在说明内容没有变化
		if _, err = s.repo.FindByID(ctx, p.ID); err != nil {
			return domain.Posting{}, err
		}
	}
	return p, nil
}

func (s *service) Approve(ctx context.Context, act actor.Actor, id int64) error {
	if !act.IsAdmin() {
		return bizerr.ErrNotAdmin
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Approved {
		return nil
	}
	ok, err := s.repo.Approve(ctx, id)
	if err != nil || ok {
		return err
	}
	return s.confirm(ctx, id, func(p domain.Posting) bool {
		return p.Approved
	})
}

func (s *service) Lock(ctx context.Context, act actor.Actor, id int64) error {
	switch {
	case act.IsAdmin():
		return s.adminSetLockState(ctx, id, domain.LockStateAdminLocked)
	case act.IsEmployer():
		return s.employerSetLockState(ctx, act, id, domain.LockStateEmployerClosed)
	default:
		return bizerr.ErrForbidden
	}
}

func (s *service) Unlock(ctx context.Context, act actor.Actor, id int64) error {
	switch {
	case act.IsAdmin():
		return s.adminSetLockState(ctx, id, domain.LockStateOpen)
	case act.IsEmployer():
		return s.employerSetLockState(ctx, act, id, domain.LockStateOpen)
	default:
		return bizerr.ErrForbidden
	}
}

func (s *service) adminSetLockState(ctx context.Context, id int64, state domain.LockState) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.LockState == state {
		return nil
	}
	ok, err := s.repo.SetLockState(ctx, id, state)
	if err != nil || ok {
		return err
	}
	return s.confirm(ctx, id, func(p domain.Posting) bool {
		return p.LockState == state
	})
}

func (s *service) employerSetLockState(ctx context.Context, act actor.Actor, id int64, state domain.LockState) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.EmployerID != act.Uid {
		return bizerr.ErrNotOwner
	}
	if p.LockState == domain.LockStateAdminLocked {
		return fmt.Errorf("%w: 职位已被管理员锁定", bizerr.ErrForbidden)
	}
	if p.LockState == state {
		return nil
	}
	ok, err := s.repo.SetEmployerLockState(ctx, id, act.Uid, state)
	if err != nil || ok {
		return err
	}
	return s.confirm(ctx, id, func(p domain.Posting) bool {
		return p.LockState == state
	})
}

// confirm 条件更新没有命中时重新查询，已经是目标状态就算成功
func (s *service) confirm(ctx context.Context, id int64, done func(p domain.Posting) bool) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if done(p) {
		return nil
	}
	s.logger.Warn("职位状态被并发修改", elog.Int64("id", id))
	return bizerr.ErrForbidden
}

func (s *service) Delete(ctx context.Context, act actor.Actor, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	var ok bool
	switch {
	case act.IsAdmin():
		ok, err = s.repo.Delete(ctx, id)
	case act.IsEmployer():
		if p.EmployerID != act.Uid {
			return bizerr.ErrNotOwner
		}
		ok, err = s.repo.DeleteByEmployer(ctx, id, act.Uid)
	default:
		return bizerr.ErrForbidden
	}
	if err != nil {
		return err
	}
	if !ok {
		return bizerr.ErrNotFound
	}
	s.logger.Info("删除职位", elog.Int64("id", id), elog.Int64("uid", act.Uid),
		elog.String("role", act.Role.String()))
	return nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Posting, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) PublicDetail(ctx context.Context, id int64) (domain.Posting, error) {
	return s.repo.CachedDetail(ctx, id)
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Posting, error) {
	list, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Posting, len(list))
	for _, p := range list {
		res[p.ID] = p
	}
	return res, nil
}

func (s *service) List(ctx context.Context, q domain.Query, offset, limit int) (int64, []domain.Posting, error) {
	if q.Now.IsZero() {
		q.Now = s.now()
	}
	var (
		eg    errgroup.Group
		total int64
		list  []domain.Posting
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, q, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		return err
	})
	err := eg.Wait()
	return total, list, err
}

func (s *service) Stats(ctx context.Context) (map[domain.Bucket]int64, error) {
	now := s.now()
	counts := make([]int64, len(domain.Buckets))
	var eg errgroup.Group
	for i, b := range domain.Buckets {
		eg.Go(func() error {
			var err error
			counts[i], err = s.repo.Count(ctx, domain.Query{Bucket: b, Now: now})
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	res := make(map[domain.Bucket]int64, len(counts))
	for i, b := range domain.Buckets {
		res[b] = counts[i]
	}
	return res, nil
}

func (s *service) owns(act actor.Actor, p domain.Posting) bool {
	return act.IsEmployer() && act.Uid == p.EmployerID
}
