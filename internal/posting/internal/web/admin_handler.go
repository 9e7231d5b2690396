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

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/posting")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/approve", ginx.BS[IdReq](h.Approve))
	g.POST("/lock", ginx.BS[IdReq](h.Lock))
	g.POST("/unlock", ginx.BS[IdReq](h.Unlock))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	now := time.Now()
	total, list, err := h.svc.List(ctx, domain.Query{
		Bucket: domain.ParseBucket(req.Bucket),
		Now:    now,
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newPosting(p, time.Now()),
	}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Approve(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Lock(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Lock(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Unlock(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unlock(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, actor.FromSession(sess), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}
