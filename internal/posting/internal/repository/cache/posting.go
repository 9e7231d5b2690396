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
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/pkg/errors"
)

const (
	postingExpiration = 30 * time.Minute
)

var (
	ErrPostingNotFound = errors.New("职位缓存没找到")
)

//go:generate mockgen -source=./posting.go -package=cachemocks -destination=./mocks/posting.mock.go PostingCache
type PostingCache interface {
	SetPosting(ctx context.Context, p domain.Posting) error
	GetPosting(ctx context.Context, id int64) (domain.Posting, error)
	DelPosting(ctx context.Context, id int64) error
}

type postingCache struct {
	ec ecache.Cache
}

func NewPostingCache(ec ecache.Cache) PostingCache {
	return &postingCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "posting:",
		},
	}
}

func (c *postingCache) SetPosting(ctx context.Context, p domain.Posting) error {
	val, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.key(p.ID), string(val), postingExpiration)
}

func (c *postingCache) GetPosting(ctx context.Context, id int64) (domain.Posting, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Posting{}, ErrPostingNotFound
	}
	if val.Err != nil {
		return domain.Posting{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var p domain.Posting
	err := val.JSONScan(&p)
	if err != nil {
		return domain.Posting{}, errors.Wrap(err, "反序列化职位失败")
	}
	return p, nil
}

func (c *postingCache) DelPosting(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *postingCache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
