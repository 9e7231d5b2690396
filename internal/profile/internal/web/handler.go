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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/profile/internal/domain"
	"github.com/ecodeclub/jobboard/internal/profile/internal/errs"
	"github.com/ecodeclub/jobboard/internal/profile/internal/service"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/profile/save", ginx.BS[Profile](h.Save))
	server.POST("/profile/detail", ginx.S(h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req Profile, sess session.Session) (ginx.Result, error) {
	err := h.svc.Save(ctx, domain.Profile{
		Uid:        sess.Claims().Uid,
		Nickname:   req.Nickname,
		Email:      req.Email,
		Industry:   req.Industry,
		Experience: req.Experience,
	})
	switch {
	case errors.Is(err, bizerr.ErrValidationFailed):
		return ginx.Result{Code: errs.ValidationFailed.Code, Msg: errs.ValidationFailed.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// Detail 还没有填写资料时返回空
func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		return ginx.Result{Data: Profile{}}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Nickname:   p.Nickname,
			Email:      p.Email,
			Industry:   p.Industry,
			Experience: p.Experience,
		},
	}, nil
}

type Profile struct {
	Nickname   string `json:"nickname"`
	Email      string `json:"email"`
	Industry   string `json:"industry"`
	Experience int    `json:"experience"`
}
