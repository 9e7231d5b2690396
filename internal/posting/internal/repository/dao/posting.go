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
package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./posting.go -package=daomocks -destination=./mocks/posting.mock.go PostingDAO
type PostingDAO interface {
	Create(ctx context.Context, p Posting) (int64, error)
	// Edit 只更新属于 employerId 的职位，同时重置审核状态和锁定状态
	Edit(ctx context.Context, p Posting) (int64, error)
	FindById(ctx context.Context, id int64) (Posting, error)
	// FindStateById 只查询审核、锁定、过期相关的字段
	FindStateById(ctx context.Context, id int64) (Posting, error)
	FindByIds(ctx context.Context, ids []int64) ([]Posting, error)
	Approve(ctx context.Context, id int64) (int64, error)
	// SetLockState 不限制发布者，管理员使用
	SetLockState(ctx context.Context, id int64, state uint8) (int64, error)
	// SetEmployerLockState 只更新属于 employerId 并且没有被管理员锁定的职位
	SetEmployerLockState(ctx context.Context, id, employerId int64, state uint8) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByEmployer(ctx context.Context, id, employerId int64) (int64, error)
	List(ctx context.Context, q Query, offset, limit int) ([]Posting, error)
	Count(ctx context.Context, q Query) (int64, error)
}

type GORMPostingDAO struct {
	db *egorm.Component
}

func NewGORMPostingDAO(db *egorm.Component) PostingDAO {
	return &GORMPostingDAO{db: db}
}

func (g *GORMPostingDAO) Create(ctx context.Context, p Posting) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Ctime == 0 {
		p.Ctime = now
	}
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMPostingDAO) Edit(ctx context.Context, p Posting) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ? AND employer_id = ?", p.Id, p.EmployerId).
		Updates(map[string]any{
			"title":          p.Title,
			"description":    p.Description,
			"location":       p.Location,
			"industry":       p.Industry,
			"salary_min":     p.SalaryMin,
			"salary_max":     p.SalaryMax,
			"headcount":      p.Headcount,
			"min_experience": p.MinExperience,
			"expires_at":     p.ExpiresAt,
			"approved":       false,
			"lock_state":     domain.LockStateOpen.ToUint8(),
			"ctime":          p.Ctime,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) FindById(ctx context.Context, id int64) (Posting, error) {
	var p Posting
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMPostingDAO) FindStateById(ctx context.Context, id int64) (Posting, error) {
	var p Posting
	err := g.db.WithContext(ctx).
		Select("id", "approved", "lock_state", "expires_at", "utime").
		Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMPostingDAO) FindByIds(ctx context.Context, ids []int64) ([]Posting, error) {
	var res []Posting
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) Approve(ctx context.Context, id int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"approved": true,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) SetLockState(ctx context.Context, id int64, state uint8) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"lock_state": state,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) SetEmployerLockState(ctx context.Context, id, employerId int64, state uint8) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ? AND employer_id = ? AND lock_state <> ?", id, employerId, domain.LockStateAdminLocked.ToUint8()).
		Updates(map[string]any{
			"lock_state": state,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) Delete(ctx context.Context, id int64) (int64, error) {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&Posting{})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) DeleteByEmployer(ctx context.Context, id, employerId int64) (int64, error) {
	res := g.db.WithContext(ctx).Where("id = ? AND employer_id = ?", id, employerId).Delete(&Posting{})
	return res.RowsAffected, res.Error
}

func (g *GORMPostingDAO) List(ctx context.Context, q Query, offset, limit int) ([]Posting, error) {
	var res []Posting
	err := g.db.WithContext(ctx).
		Scopes(queryScope(q)).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) Count(ctx context.Context, q Query) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Posting{}).
		Scopes(queryScope(q)).
		Count(&res).Error
	return res, err
}

func queryScope(q Query) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = bucketScope(db, domain.Bucket(q.Bucket), q.Now)
		if q.EmployerId > 0 {
			db = db.Where("employer_id = ?", q.EmployerId)
		}
		if q.Candidate != nil {
			db = db.Where("industry = ? AND min_experience <= ?", q.Candidate.Industry, q.Candidate.Experience)
		}
		return db
	}
}

// bucketScope 和 domain.Posting.Bucket 的优先级保持一致
func bucketScope(db *gorm.DB, bucket domain.Bucket, now int64) *gorm.DB {
	switch bucket {
	case domain.BucketAdminLocked:
		return db.Where("lock_state = ?", domain.LockStateAdminLocked.ToUint8())
	case domain.BucketEmployerClosed:
		return db.Where("lock_state = ?", domain.LockStateEmployerClosed.ToUint8())
	case domain.BucketExpired:
		return db.Where("lock_state = ? AND expires_at <= ?", domain.LockStateOpen.ToUint8(), now)
	case domain.BucketPending:
		return db.Where("lock_state = ? AND expires_at > ? AND approved = ?", domain.LockStateOpen.ToUint8(), now, false)
	case domain.BucketAvailable:
		return db.Where("lock_state = ? AND expires_at > ? AND approved = ?", domain.LockStateOpen.ToUint8(), now, true)
	default:
		return db
	}
}
