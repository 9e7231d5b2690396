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
package service

// 和 application 模块中的 ReviewStatus 保持一致
const suitable uint8 = 2

type mailData struct {
	Nickname     string
	PostingID    int64
	PostingTitle string
	CandidateID  int64
	Suitable     bool
}

const templates = `
{{define "submitted"}}<p>{{if .Nickname}}{{.Nickname}}{{else}}您好{{end}}：</p>
<p>您发布的职位「{{.PostingTitle}}」(#{{.PostingID}}) 收到了一份新的投递，候选人编号 {{.CandidateID}}。</p>
<p>请尽快登录处理。</p>{{end}}
{{define "reviewed"}}<p>{{if .Nickname}}{{.Nickname}}{{else}}您好{{end}}：</p>
{{if .Suitable}}<p>您投递的职位「{{.PostingTitle}}」已通过初筛，招聘方会尽快与您联系。</p>
{{else}}<p>很遗憾，您投递的职位「{{.PostingTitle}}」暂不合适，感谢您的关注。</p>
{{end}}{{end}}`
