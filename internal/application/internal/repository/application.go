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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./application.go -package=repomocks -destination=./mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	// Create 重复投递返回 bizerr.ErrAlreadyApplied
	Create(ctx context.Context, a domain.Application) (int64, error)
	// UpdateReviewStatus 返回 false 表示投递不存在或者不属于该招聘方
	UpdateReviewStatus(ctx context.Context, a domain.Application) (bool, error)
	Find(ctx context.Context, postingID, candidateID int64) (domain.Application, error)
	Exists(ctx context.Context, postingID, candidateID int64) (bool, error)
	ListByCandidate(ctx context.Context, candidateID int64, offset, limit int) ([]domain.Application, error)
	CountByCandidate(ctx context.Context, candidateID int64) (int64, error)
	ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, error)
	CountByPosting(ctx context.Context, postingID int64) (int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, a domain.Application) (int64, error) {
	id, err := r.dao.Create(ctx, r.toEntity(a))
	if errors.Is(err, dao.ErrDuplicatedApplication) {
		return 0, fmt.Errorf("%w: posting %d candidate %d", bizerr.ErrAlreadyApplied, a.PostingID, a.CandidateID)
	}
	return id, bizerr.Dependency(err)
}

func (r *applicationRepository) UpdateReviewStatus(ctx context.Context, a domain.Application) (bool, error) {
	affected, err := r.dao.UpdateReviewStatus(ctx, a.PostingID, a.CandidateID, a.EmployerID, a.ReviewStatus.ToUint8())
	if err != nil {
		return false, bizerr.Dependency(err)
	}
	return affected > 0, nil
}

func (r *applicationRepository) Find(ctx context.Context, postingID, candidateID int64) (domain.Application, error) {
	a, err := r.dao.Find(ctx, postingID, candidateID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Application{}, fmt.Errorf("%w: posting %d candidate %d", bizerr.ErrNotFound, postingID, candidateID)
	}
	if err != nil {
		return domain.Application{}, bizerr.Dependency(err)
	}
	return r.toDomain(a), nil
}

func (r *applicationRepository) Exists(ctx context.Context, postingID, candidateID int64) (bool, error) {
	ok, err := r.dao.Exists(ctx, postingID, candidateID)
	return ok, bizerr.Dependency(err)
}

func (r *applicationRepository) ListByCandidate(ctx context.Context, candidateID int64, offset, limit int) ([]domain.Application, error) {
	res, err := r.dao.ListByCandidate(ctx, candidateID, offset, limit)
	if err != nil {
		return nil, bizerr.Dependency(err)
	}
	return r.toDomains(res), nil
}

func (r *applicationRepository) CountByCandidate(ctx context.Context, candidateID int64) (int64, error) {
	cnt, err := r.dao.CountByCandidate(ctx, candidateID)
	return cnt, bizerr.Dependency(err)
}

func (r *applicationRepository) ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, error) {
	res, err := r.dao.ListByPosting(ctx, postingID, offset, limit)
	if err != nil {
		return nil, bizerr.Dependency(err)
	}
	return r.toDomains(res), nil
}

func (r *applicationRepository) CountByPosting(ctx context.Context, postingID int64) (int64, error) {
	cnt, err := r.dao.CountByPosting(ctx, postingID)
	return cnt, bizerr.Dependency(err)
}

func (r *applicationRepository) toDomains(as []dao.Application) []domain.Application {
	return slice.Map(as, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	})
}

func (r *applicationRepository) toDomain(a dao.Application) domain.Application {
	return domain.Application{
		ID:           a.Id,
		PostingID:    a.PostingId,
		CandidateID:  a.CandidateId,
		EmployerID:   a.EmployerId,
		CVRef:        a.CvRef,
		ReviewStatus: domain.ReviewStatus(a.ReviewStatus),
		AppliedAt:    time.UnixMilli(a.Ctime),
		Utime:        time.UnixMilli(a.Utime),
	}
}

func (r *applicationRepository) toEntity(a domain.Application) dao.Application {
	res := dao.Application{
		Id:           a.ID,
		PostingId:    a.PostingID,
		CandidateId:  a.CandidateID,
		EmployerId:   a.EmployerID,
		CvRef:        a.CVRef,
		ReviewStatus: a.ReviewStatus.ToUint8(),
	}
	if !a.AppliedAt.IsZero() {
		res.Ctime = a.AppliedAt.UnixMilli()
	}
	return res
}
