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
	"github.com/ecodeclub/jobboard/internal/application/internal/errs"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// errorResult notFound 由调用方决定，投递和处理时不存在的对象不同
func errorResult(err error, notFound errs.ErrorCode) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, bizerr.ErrNotFound):
		code = notFound
	case errors.Is(err, bizerr.ErrValidationFailed):
		code = errs.ValidationFailed
	case errors.Is(err, bizerr.ErrPostingNotOpen):
		code = errs.PostingNotOpen
	case errors.Is(err, bizerr.ErrAlreadyApplied):
		code = errs.AlreadyApplied
	case errors.Is(err, bizerr.ErrForbidden):
		code = errs.Forbidden
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
