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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/gin-gonic/gin"
)

// EmployerHandler 招聘方处理收到的投递
type EmployerHandler struct {
	svc service.Service
}

func NewEmployerHandler(svc service.Service) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

func (h *EmployerHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employer/application")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/review", ginx.BS[ReviewReq](h.Review))
}

func (h *EmployerHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	return list(ctx, h.svc, actor.FromSession(sess), req)
}

func (h *EmployerHandler) Review(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Review(ctx, actor.FromSession(sess), req.PostingID, req.CandidateID, domain.ReviewStatus(req.Outcome))
	if err != nil {
		return errorResult(err, errs.ApplicationNotFound)
	}
	return ginx.Result{
		Data: newApplication(a),
	}, nil
}

func list(ctx *ginx.Context, svc service.Service, act actor.Actor, req ListReq) (ginx.Result, error) {
	total, res, err := svc.ListByPosting(ctx, act, req.PostingID, req.Offset, req.Limit)
	if err != nil {
		return errorResult(err, errs.PostingNotFound)
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			List: slice.Map(res, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}
