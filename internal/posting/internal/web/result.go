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
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/posting/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.PostingNotFound.Code,
		Msg:  errs.PostingNotFound.Msg,
	}
)

// errorResult 业务错误转换为错误码，其余的交给 ginx 记录日志
func errorResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		code = errs.PostingNotFound
	case errors.Is(err, bizerr.ErrValidationFailed):
		code = errs.ValidationFailed
	case errors.Is(err, bizerr.ErrNotEmployer):
		code = errs.NotEmployer
	case errors.Is(err, bizerr.ErrNotOwner):
		code = errs.NotOwner
	case errors.Is(err, bizerr.ErrNotAdmin):
		code = errs.NotAdmin
	case errors.Is(err, bizerr.ErrForbidden):
		code = errs.Forbidden
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
