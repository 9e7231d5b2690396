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
package web

import (
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/errs"
	"github.com/ecodeclub/jobboard/internal/posting/internal/service"
	"github.com/ecodeclub/jobboard/internal/profile"
	"github.com/gin-gonic/gin"
)

// Handler C 端职位查询
type Handler struct {
	svc        service.Service
	profileSvc profile.Service
}

func NewHandler(svc service.Service, profileSvc profile.Service) *Handler {
	return &Handler{
		svc:        svc,
		profileSvc: profileSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/posting/list", ginx.B[Page](h.List))
	server.POST("/posting/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/posting/suitable", ginx.BS[Page](h.Suitable))
}

// List 只展示可投递的职位
func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	return h.list(ctx, domain.Query{Bucket: domain.BucketAvailable}, req.Offset, req.Limit)
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.PublicDetail(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	now := time.Now()
	if p.Bucket(now) != domain.BucketAvailable {
		return notFoundResult, nil
	}
	return ginx.Result{
		Data: newPosting(p, now),
	}, nil
}

// Suitable 行业相同并且满足年限要求的可投递职位
func (h *Handler) Suitable(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	prof, err := h.profileSvc.Profile(ctx, uid)
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		return ginx.Result{
			Code: errs.ProfileRequired.Code,
			Msg:  errs.ProfileRequired.Msg,
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.list(ctx, domain.Query{
		Bucket: domain.BucketAvailable,
		Candidate: &domain.Candidate{
			Industry:   prof.Industry,
			Experience: prof.Experience,
		},
	}, req.Offset, req.Limit)
}

func (h *Handler) list(ctx *ginx.Context, q domain.Query, offset, limit int) (ginx.Result, error) {
	q.Now = time.Now()
	total, list, err := h.svc.List(ctx, q, offset, limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: PostingList{
			Total: total,
			List: slice.Map(list, func(idx int, src domain.Posting) Posting {
				return newPosting(src, q.Now)
			}),
		},
	}, nil
}
