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

import "github.com/ecodeclub/jobboard/internal/notification/internal/domain"

const ApplicationEventName = "application_events"

type ApplicationEvent struct {
	Key          string `json:"key"`
	Kind         string `json:"kind"`
	CandidateID  int64  `json:"candidateId"`
	PostingID    int64  `json:"postingId"`
	EmployerID   int64  `json:"employerId"`
	PostingTitle string `json:"postingTitle"`
	Outcome      uint8  `json:"outcome"`
	Ctime        int64  `json:"ctime"`
}

func (e ApplicationEvent) toDomain() domain.Notification {
	return domain.Notification{
		Key:          e.Key,
		Kind:         domain.Kind(e.Kind),
		CandidateID:  e.CandidateID,
		PostingID:    e.PostingID,
		EmployerID:   e.EmployerID,
		PostingTitle: e.PostingTitle,
		Outcome:      e.Outcome,
	}
}
