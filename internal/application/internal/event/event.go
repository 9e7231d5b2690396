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
package event

import "github.com/lithammer/shortuuid/v4"

const ApplicationEventName = "application_events"

const (
	KindSubmitted = "submitted"
	KindReviewed  = "reviewed"
)

// ApplicationEvent 投递和处理结果，交给通知模块发送邮件
type ApplicationEvent struct {
	// Key 幂等用
	Key          string `json:"key"`
	Kind         string `json:"kind"`
	CandidateID  int64  `json:"candidateId"`
	PostingID    int64  `json:"postingId"`
	EmployerID   int64  `json:"employerId"`
	PostingTitle string `json:"postingTitle"`
	// Outcome 只有 reviewed 才有，1-不合适 2-合适
	Outcome uint8 `json:"outcome"`
	Ctime   int64 `json:"ctime"`
}

func NewSubmittedEvent(candidateID, postingID, employerID int64, title string, ctime int64) ApplicationEvent {
	return ApplicationEvent{
		Key:          shortuuid.New(),
		Kind:         KindSubmitted,
		CandidateID:  candidateID,
		PostingID:    postingID,
		EmployerID:   employerID,
		PostingTitle: title,
		Ctime:        ctime,
	}
}

func NewReviewedEvent(candidateID, postingID, employerID int64, title string, outcome uint8, ctime int64) ApplicationEvent {
	return ApplicationEvent{
		Key:          shortuuid.New(),
		Kind:         KindReviewed,
		CandidateID:  candidateID,
		PostingID:    postingID,
		EmployerID:   employerID,
		PostingTitle: title,
		Outcome:      outcome,
		Ctime:        ctime,
	}
}
