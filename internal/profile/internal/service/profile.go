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

	"github.com/ecodeclub/jobboard/internal/profile/internal/domain"
	"github.com/ecodeclub/jobboard/internal/profile/internal/repository"
)

//go:generate mockgen -source=./profile.go -package=profilemocks -destination=../../mocks/profile.mock.go Service
type Service interface {
	Save(ctx context.Context, p domain.Profile) error
	// Profile 没有资料时返回 bizerr.ErrNotFound
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	Profiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error)
}

type service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, p domain.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Save(ctx, p)
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Profiles(ctx context.Context, uids []int64) (map[int64]domain.Profile, error) {
	list, err := s.repo.FindByUids(ctx, uids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Profile, len(list))
	for _, p := range list {
		res[p.Uid] = p
	}
	return res, nil
}
