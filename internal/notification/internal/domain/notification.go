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
package domain

type Kind string

const (
	KindSubmitted Kind = "submitted"
	KindReviewed  Kind = "reviewed"
)

// Notification 投递提交之后通知招聘方，处理之后通知候选人
type Notification struct {
	Key          string
	Kind         Kind
	CandidateID  int64
	PostingID    int64
	EmployerID   int64
	PostingTitle string
	// 1-不合适 2-合适
	Outcome uint8
}

// Recipient 提交通知招聘方，处理结果通知候选人
func (n Notification) Recipient() int64 {
	if n.Kind == KindReviewed {
		return n.CandidateID
	}
	return n.EmployerID
}
