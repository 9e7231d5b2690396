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
package errs

var (
	PostingNotFound  = ErrorCode{Code: 420001, Msg: "职位不存在"}
	ValidationFailed = ErrorCode{Code: 420002, Msg: "职位信息不合法"}
	NotEmployer      = ErrorCode{Code: 420003, Msg: "只有招聘方可以发布职位"}
	NotOwner         = ErrorCode{Code: 420004, Msg: "不是职位的发布者"}
	NotAdmin         = ErrorCode{Code: 420005, Msg: "需要管理员权限"}
	Forbidden        = ErrorCode{Code: 420006, Msg: "无权操作该职位"}
	ProfileRequired  = ErrorCode{Code: 420007, Msg: "请先完善个人资料"}

	SystemError = ErrorCode{Code: 520001, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
