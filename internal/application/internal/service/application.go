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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/event"
	"github.com/ecodeclub/jobboard/internal/application/internal/repository"
	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/posting"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// AppliedPosting 候选人看到的投递记录，职位被删除之后 Bucket 为 BucketUnknown
type AppliedPosting struct {
	Application  domain.Application
	PostingTitle string
	Bucket       posting.Bucket
}

type Service interface {
	// Apply 只有候选人可以投递，并且职位必须处于可投递状态
	Apply(ctx context.Context, act actor.Actor, postingID int64, cvRef string) (domain.Application, error)
	// Review 只有职位的发布者可以处理，可以重复处理
	Review(ctx context.Context, act actor.Actor, postingID, candidateID int64, outcome domain.ReviewStatus) (domain.Application, error)
	HasApplied(ctx context.Context, candidateID, postingID int64) (bool, error)
	ListByCandidate(ctx context.Context, candidateID int64, offset, limit int) (int64, []AppliedPosting, error)
	// ListByPosting 职位的发布者或者管理员可以查看
	ListByPosting(ctx context.Context, act actor.Actor, postingID int64, offset, limit int) (int64, []domain.Application, error)
}

type service struct {
	repo       repository.ApplicationRepository
	postingSvc posting.Service
	producer   event.ApplicationEventProducer
	now        func() time.Time
	logger     *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	postingSvc posting.Service,
	producer event.ApplicationEventProducer) Service {
	return &service{
		repo:       repo,
		postingSvc: postingSvc,
		producer:   producer,
		now:        time.Now,
		logger:     elog.DefaultLogger.With(elog.FieldComponentName("application.service")),
	}
}

func (s *service) Apply(ctx context.Context, act actor.Actor, postingID int64, cvRef string) (domain.Application, error) {
	if !act.IsCandidate() {
		return domain.Application{}, fmt.Errorf("%w: 只有候选人可以投递", bizerr.ErrForbidden)
	}
	p, err := s.postingSvc.Detail(ctx, postingID)
	if err != nil {
		return domain.Application{}, err
	}
	now := s.now()
	if p.Bucket(now) != posting.BucketAvailable {
		return domain.Application{}, fmt.Errorf("%w: posting %d %s", bizerr.ErrPostingNotOpen, postingID, p.Bucket(now))
	}
	ok, err := s.repo.Exists(ctx, postingID, act.Uid)
	if err != nil {
		return domain.Application{}, err
	}
	if ok {
		return domain.Application{}, fmt.Errorf("%w: posting %d candidate %d", bizerr.ErrAlreadyApplied, postingID, act.Uid)
	}
	a := domain.Application{
		PostingID:    postingID,
		CandidateID:  act.Uid,
		EmployerID:   p.EmployerID,
		CVRef:        cvRef,
		ReviewStatus: domain.ReviewStatusNotReviewed,
		AppliedAt:    now,
		Utime:        now,
	}
	// 并发投递时由唯一索引兜底
	a.ID, err = s.repo.Create(ctx, a)
	if err != nil {
		return domain.Application{}, err
	}
	s.produce(ctx, event.NewSubmittedEvent(a.CandidateID, a.PostingID, a.EmployerID, p.Title, now.UnixMilli()))
	return a, nil
}

func (s *service) Review(ctx context.Context, act actor.Actor, postingID, candidateID int64, outcome domain.ReviewStatus) (domain.Application, error) {
	if err := outcome.ValidateOutcome(); err != nil {
		return domain.Application{}, err
	}
	a, err := s.repo.Find(ctx, postingID, candidateID)
	if err != nil {
		return domain.Application{}, err
	}
	if !act.IsEmployer() {
		return domain.Application{}, bizerr.ErrNotEmployer
	}
	if a.EmployerID != act.Uid {
		return domain.Application{}, bizerr.ErrNotOwner
	}
	now := s.now()
	a.ReviewStatus = outcome
	a.Utime = now
	ok, err := s.repo.UpdateReviewStatus(ctx, a)
	if err != nil {
		return domain.Application{}, err
	}
	if !ok {
		// 更新时间相同的时候不会有行被修改，以数据库中的为准
		latest, err := s.repo.Find(ctx, postingID, candidateID)
		if err != nil {
			return domain.Application{}, err
		}
		if latest.EmployerID != act.Uid || latest.ReviewStatus != outcome {
			return domain.Application{}, bizerr.ErrForbidden
		}
		a = latest
	}
	s.produce(ctx, event.NewReviewedEvent(a.CandidateID, a.PostingID, a.EmployerID,
		s.postingTitle(ctx, postingID), outcome.ToUint8(), now.UnixMilli()))
	return a, nil
}

func (s *service) HasApplied(ctx context.Context, candidateID, postingID int64) (bool, error) {
	return s.repo.Exists(ctx, postingID, candidateID)
}

func (s *service) ListByCandidate(ctx context.Context, candidateID int64, offset, limit int) (int64, []AppliedPosting, error) {
	var (
		eg    errgroup.Group
		total int64
		list  []domain.Application
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListByCandidate(ctx, candidateID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCandidate(ctx, candidateID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	ids := slice.Map(list, func(idx int, src domain.Application) int64 {
		return src.PostingID
	})
	postings, err := s.postingSvc.GetByIDs(ctx, ids)
	if err != nil {
		return 0, nil, err
	}
	now := s.now()
	return total, slice.Map(list, func(idx int, src domain.Application) AppliedPosting {
		res := AppliedPosting{Application: src, Bucket: posting.BucketUnknown}
		p, ok := postings[src.PostingID]
		if ok {
			res.PostingTitle = p.Title
			res.Bucket = p.Bucket(now)
		}
		return res
	}), nil
}

func (s *service) ListByPosting(ctx context.Context, act actor.Actor, postingID int64, offset, limit int) (int64, []domain.Application, error) {
	switch {
	case act.IsAdmin():
	case act.IsEmployer():
		p, err := s.postingSvc.Detail(ctx, postingID)
		if err != nil {
			return 0, nil, err
		}
		if p.EmployerID != act.Uid {
			return 0, nil, bizerr.ErrNotOwner
		}
	default:
		return 0, nil, bizerr.ErrForbidden
	}
	var (
		eg    errgroup.Group
		total int64
		list  []domain.Application
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.ListByPosting(ctx, postingID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByPosting(ctx, postingID)
		return err
	})
	return total, list, eg.Wait()
}

// produce 通知失败不影响已经完成的操作
func (s *service) produce(ctx context.Context, evt event.ApplicationEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送投递事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) postingTitle(ctx context.Context, postingID int64) string {
	p, err := s.postingSvc.Detail(ctx, postingID)
	if err != nil {
		if !errors.Is(err, bizerr.ErrNotFound) {
			s.logger.Warn("查询职位失败", elog.Int64("posting", postingID), elog.FieldErr(err))
		}
		return ""
	}
	return p.Title
}
