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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/service"
	"github.com/gin-gonic/gin"
)

// EmployerHandler 招聘方管理自己的职位
type EmployerHandler struct {
	svc service.Service
}

func NewEmployerHandler(svc service.Service) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

func (h *EmployerHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employer/posting")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/edit", ginx.BS[SaveReq](h.Edit))
	g.POST("/close", ginx.BS[IdReq](h.Close))
	g.POST("/reopen", ginx.BS[IdReq](h.Reopen))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/list", ginx.BS[ListReq](h.List))
}

func (h *EmployerHandler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Create(ctx, actor.FromSession(sess), req.Posting.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: p.ID,
	}, nil
}

func (h *EmployerHandler) Edit(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Edit(ctx, actor.FromSession(sess), req.Posting.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newPosting(p, time.Now()),
	}, nil
}

func (h *EmployerHandler) Close(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Lock(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *EmployerHandler) Reopen(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unlock(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *EmployerHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *EmployerHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	now := time.Now()
	total, list, err := h.svc.List(ctx, domain.Query{
		Bucket:     domain.ParseBucket(req.Bucket),
		EmployerID: sess.Claims().Uid,
		Now:        now,
	}, req.Offset, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: PostingList{
			Total: total,
			List: slice.Map(list, func(idx int, src domain.Posting) Posting {
				return newPosting(src, now)
			}),
		},
	}, nil
}
