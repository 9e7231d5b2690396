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

package bizerr

import (
	"errors"
	"fmt"
)

// 生命周期引擎对外暴露的错误类型，调用方用 errors.Is 判断
var (
	ErrNotFound = errors.New("记录不存在")

	ErrForbidden   = errors.New("无权操作")
	ErrNotOwner    = fmt.Errorf("%w: 不是职位的发布者", ErrForbidden)
	ErrNotAdmin    = fmt.Errorf("%w: 不是管理员", ErrForbidden)
	ErrNotEmployer = fmt.Errorf("%w: 不是招聘方", ErrForbidden)

	ErrPostingNotOpen   = errors.New("职位当前不接受投递")
	ErrAlreadyApplied   = errors.New("已经投递过该职位")
	ErrValidationFailed = errors.New("参数校验失败")

	// ErrDependencyUnavailable 存储之类的依赖出错，操作整体失败
	ErrDependencyUnavailable = errors.New("依赖服务不可用")
)

// Validation 构造一个带字段说明的校验错误
func Validation(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidationFailed, field, reason)
}

// Dependency 包装存储等依赖返回的错误
func Dependency(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
}
