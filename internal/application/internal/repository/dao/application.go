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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ErrDuplicatedApplication 同一个候选人重复投递同一个职位
var ErrDuplicatedApplication = errors.New("重复投递")

type ApplicationDAO interface {
	Create(ctx context.Context, a Application) (int64, error)
	// UpdateReviewStatus 只更新属于 employerId 的投递
	UpdateReviewStatus(ctx context.Context, postingId, candidateId, employerId int64, status uint8) (int64, error)
	Find(ctx context.Context, postingId, candidateId int64) (Application, error)
	Exists(ctx context.Context, postingId, candidateId int64) (bool, error)
	ListByCandidate(ctx context.Context, candidateId int64, offset, limit int) ([]Application, error)
	CountByCandidate(ctx context.Context, candidateId int64) (int64, error)
	ListByPosting(ctx context.Context, postingId int64, offset, limit int) ([]Application, error)
	CountByPosting(ctx context.Context, postingId int64) (int64, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, a Application) (int64, error) {
	now := time.Now().UnixMilli()
	if a.Ctime == 0 {
		a.Ctime = now
	}
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicatedApplication
		}
	}
	return a.Id, err
}

func (g *GORMApplicationDAO) UpdateReviewStatus(ctx context.Context, postingId, candidateId, employerId int64, status uint8) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("posting_id = ? AND candidate_id = ? AND employer_id = ?", postingId, candidateId, employerId).
		Updates(map[string]any{
			"review_status": status,
			"utime":         time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMApplicationDAO) Find(ctx context.Context, postingId, candidateId int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).
		Where("posting_id = ? AND candidate_id = ?", postingId, candidateId).
		First(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Exists(ctx context.Context, postingId, candidateId int64) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("posting_id = ? AND candidate_id = ?", postingId, candidateId).
		Count(&cnt).Error
	return cnt > 0, err
}

func (g *GORMApplicationDAO) ListByCandidate(ctx context.Context, candidateId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("candidate_id = ?", candidateId).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByCandidate(ctx context.Context, candidateId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("candidate_id = ?", candidateId).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMApplicationDAO) ListByPosting(ctx context.Context, postingId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("posting_id = ?", postingId).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByPosting(ctx context.Context, postingId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("posting_id = ?", postingId).
		Count(&cnt).Error
	return cnt, err
}

// Application 投递记录，职位被删除之后仍然保留
type Application struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	PostingId    int64  `gorm:"uniqueIndex:uniq_posting_candidate"`
	CandidateId  int64  `gorm:"uniqueIndex:uniq_posting_candidate;index"`
	EmployerId   int64  `gorm:"index"`
	CvRef        string `gorm:"type:varchar(512)"`
	ReviewStatus uint8  `gorm:"type:tinyint(3);not null;default:0;comment:0-未处理 1-不合适 2-合适"`
	// 投递时间
	Ctime int64
	Utime int64
}
