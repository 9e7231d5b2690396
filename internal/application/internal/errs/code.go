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
	ApplicationNotFound = ErrorCode{Code: 421001, Msg: "投递记录不存在"}
	ValidationFailed    = ErrorCode{Code: 421002, Msg: "参数不合法"}
	PostingNotFound     = ErrorCode{Code: 421003, Msg: "职位不存在"}
	PostingNotOpen      = ErrorCode{Code: 421004, Msg: "职位当前不接受投递"}
	AlreadyApplied      = ErrorCode{Code: 421005, Msg: "已经投递过该职位"}
	Forbidden           = ErrorCode{Code: 421006, Msg: "无权操作"}

	SystemError = ErrorCode{Code: 521001, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
