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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

// PostingRepository 写操作返回 bool 表示条件更新是否命中
//
//go:generate mockgen -source=./posting.go -package=repomocks -destination=./mocks/posting.mock.go PostingRepository
type PostingRepository interface {
	Create(ctx context.Context, p domain.Posting) (int64, error)
	Edit(ctx context.Context, p domain.Posting) (bool, error)
	// FindByID 直接查询数据库，状态流转都用这个
	FindByID(ctx context.Context, id int64) (domain.Posting, error)
	// CachedDetail 仅用于展示，缓存里只有内容可信，审核和锁定状态每次都查数据库
	CachedDetail(ctx context.Context, id int64) (domain.Posting, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Posting, error)
	Approve(ctx context.Context, id int64) (bool, error)
	SetLockState(ctx context.Context, id int64, state domain.LockState) (bool, error)
	SetEmployerLockState(ctx context.Context, id, employerID int64, state domain.LockState) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByEmployer(ctx context.Context, id, employerID int64) (bool, error)
	List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Posting, error)
	Count(ctx context.Context, q domain.Query) (int64, error)
}

type postingRepository struct {
	dao    dao.PostingDAO
	cache  cache.PostingCache
	logger *elog.Component
}

func NewPostingRepository(d dao.PostingDAO, c cache.PostingCache) PostingRepository {
	return &postingRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponentName("posting.repository")),
	}
}

func (r *postingRepository) Create(ctx context.Context, p domain.Posting) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(p))
	return id, bizerr.Dependency(err)
}

func (r *postingRepository) Edit(ctx context.Context, p domain.Posting) (bool, error) {
	affected, err := r.dao.Edit(ctx, r.toEntity(p))
	return r.afterWrite(ctx, p.ID, affected, err)
}

func (r *postingRepository) FindByID(ctx context.Context, id int64) (domain.Posting, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, r.wrap(err)
	}
	return r.toDomain(p), nil
}

func (r *postingRepository) CachedDetail(ctx context.Context, id int64) (domain.Posting, error) {
	p, err := r.cache.GetPosting(ctx, id)
	if err != nil {
		if !errors.Is(err, cache.ErrPostingNotFound) {
			r.logger.Warn("查询职位缓存失败", elog.Int64("id", id), elog.FieldErr(err))
		}
		p, err = r.FindByID(ctx, id)
		if err != nil {
			return domain.Posting{}, err
		}
		if err1 := r.cache.SetPosting(ctx, p); err1 != nil {
			r.logger.Warn("回写职位缓存失败", elog.Int64("id", id), elog.FieldErr(err1))
		}
		return p, nil
	}
	// 回写缓存和状态变更之间存在竞争，缓存里的状态可能是旧的
	state, err := r.dao.FindStateById(ctx, id)
	if err != nil {
		return domain.Posting{}, r.wrap(err)
	}
	p.Approved = state.Approved
	p.LockState = domain.LockState(state.LockState)
	p.ExpiresAt = time.UnixMilli(state.ExpiresAt)
	p.Utime = time.UnixMilli(state.Utime)
	return p, nil
}

func (r *postingRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Posting, error) {
	res, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, bizerr.Dependency(err)
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *postingRepository) Approve(ctx context.Context, id int64) (bool, error) {
	affected, err := r.dao.Approve(ctx, id)
	return r.afterWrite(ctx, id, affected, err)
}

func (r *postingRepository) SetLockState(ctx context.Context, id int64, state domain.LockState) (bool, error) {
	affected, err := r.dao.SetLockState(ctx, id, state.ToUint8())
	return r.afterWrite(ctx, id, affected, err)
}

func (r *postingRepository) SetEmployerLockState(ctx context.Context, id, employerID int64, state domain.LockState) (bool, error) {
	affected, err := r.dao.SetEmployerLockState(ctx, id, employerID, state.ToUint8())
	return r.afterWrite(ctx, id, affected, err)
}

func (r *postingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := r.dao.Delete(ctx, id)
	return r.afterWrite(ctx, id, affected, err)
}

func (r *postingRepository) DeleteByEmployer(ctx context.Context, id, employerID int64) (bool, error) {
	affected, err := r.dao.DeleteByEmployer(ctx, id, employerID)
	return r.afterWrite(ctx, id, affected, err)
}

func (r *postingRepository) List(ctx context.Context, q domain.Query, offset, limit int) ([]domain.Posting, error) {
	res, err := r.dao.List(ctx, r.toDAOQuery(q), offset, limit)
	if err != nil {
		return nil, bizerr.Dependency(err)
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *postingRepository) Count(ctx context.Context, q domain.Query) (int64, error) {
	cnt, err := r.dao.Count(ctx, r.toDAOQuery(q))
	return cnt, bizerr.Dependency(err)
}

// afterWrite 写成功之后删除缓存，删除失败只记录日志
func (r *postingRepository) afterWrite(ctx context.Context, id int64, affected int64, err error) (bool, error) {
	if err != nil {
		return false, bizerr.Dependency(err)
	}
	if affected > 0 {
		if err1 := r.cache.DelPosting(ctx, id); err1 != nil {
			r.logger.Warn("删除职位缓存失败", elog.Int64("id", id), elog.FieldErr(err1))
		}
	}
	return affected > 0, nil
}

func (r *postingRepository) wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bizerr.ErrNotFound
	}
	return bizerr.Dependency(err)
}

func (r *postingRepository) toDAOQuery(q domain.Query) dao.Query {
	res := dao.Query{
		Bucket:     q.Bucket.ToUint8(),
		EmployerId: q.EmployerID,
		Now:        q.Now.UnixMilli(),
	}
	if q.Candidate != nil {
		res.Candidate = &dao.CandidateCond{
			Industry:   q.Candidate.Industry,
			Experience: q.Candidate.Experience,
		}
	}
	return res
}

func (r *postingRepository) toEntity(p domain.Posting) dao.Posting {
	return dao.Posting{
		Id:            p.ID,
		EmployerId:    p.EmployerID,
		Title:         p.Title,
		Description:   p.Description,
		Location:      p.Location,
		Industry:      p.Industry,
		SalaryMin:     p.SalaryMin,
		SalaryMax:     p.SalaryMax,
		Headcount:     p.Headcount,
		MinExperience: p.MinExperience,
		Approved:      p.Approved,
		LockState:     p.LockState.ToUint8(),
		ExpiresAt:     p.ExpiresAt.UnixMilli(),
		Ctime:         p.Ctime.UnixMilli(),
	}
}

func (r *postingRepository) toDomain(p dao.Posting) domain.Posting {
	return domain.Posting{
		ID:         p.Id,
		EmployerID: p.EmployerId,
		Content: domain.Content{
			Title:         p.Title,
			Description:   p.Description,
			Location:      p.Location,
			Industry:      p.Industry,
			SalaryMin:     p.SalaryMin,
			SalaryMax:     p.SalaryMax,
			Headcount:     p.Headcount,
			MinExperience: p.MinExperience,
		},
		Approved:  p.Approved,
		LockState: domain.LockState(p.LockState),
		ExpiresAt: time.UnixMilli(p.ExpiresAt),
		Ctime:     time.UnixMilli(p.Ctime),
		Utime:     time.UnixMilli(p.Utime),
	}
}
