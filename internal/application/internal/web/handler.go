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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/gin-gonic/gin"
)

// Handler 候选人投递
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/application")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/has-applied", ginx.BS[PostingReq](h.HasApplied))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Apply(ctx, actor.FromSession(sess), req.PostingID, req.CVRef)
	if err != nil {
		return errorResult(err, errs.PostingNotFound)
	}
	return ginx.Result{
		Data: newApplication(a),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	total, list, err := h.svc.ListByCandidate(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AppliedPostingList{
			Total: total,
			List: slice.Map(list, func(idx int, src service.AppliedPosting) AppliedPosting {
				return newAppliedPosting(src)
			}),
		},
	}, nil
}

func (h *Handler) HasApplied(ctx *ginx.Context, req PostingReq, sess session.Session) (ginx.Result, error) {
	ok, err := h.svc.HasApplied(ctx, sess.Claims().Uid, req.PostingID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ok,
	}, nil
}
