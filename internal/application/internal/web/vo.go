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
	"github.com/ecodeclub/jobboard/internal/application/internal/domain"
	"github.com/ecodeclub/jobboard/internal/application/internal/service"
)

type ApplyReq struct {
	PostingID int64  `json:"postingId"`
	CVRef     string `json:"cvRef"`
}

type PostingReq struct {
	PostingID int64 `json:"postingId"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListReq struct {
	PostingID int64 `json:"postingId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

// ReviewReq Outcome 1-不合适 2-合适
type ReviewReq struct {
	PostingID   int64 `json:"postingId"`
	CandidateID int64 `json:"candidateId"`
	Outcome     uint8 `json:"outcome"`
}

type Application struct {
	ID           int64  `json:"id"`
	PostingID    int64  `json:"postingId"`
	CandidateID  int64  `json:"candidateId"`
	EmployerID   int64  `json:"employerId"`
	CVRef        string `json:"cvRef"`
	ReviewStatus uint8  `json:"reviewStatus"`
	// 毫秒
	AppliedAt int64 `json:"appliedAt"`
	Utime     int64 `json:"utime"`
}

func newApplication(a domain.Application) Application {
	return Application{
		ID:           a.ID,
		PostingID:    a.PostingID,
		CandidateID:  a.CandidateID,
		EmployerID:   a.EmployerID,
		CVRef:        a.CVRef,
		ReviewStatus: a.ReviewStatus.ToUint8(),
		AppliedAt:    a.AppliedAt.UnixMilli(),
		Utime:        a.Utime.UnixMilli(),
	}
}

type ApplicationList struct {
	Total int64         `json:"total"`
	List  []Application `json:"list"`
}

// AppliedPosting 候选人的投递记录，职位删除后 Bucket 为 unknown
type AppliedPosting struct {
	Application
	PostingTitle string `json:"postingTitle"`
	Bucket       string `json:"bucket"`
}

func newAppliedPosting(a service.AppliedPosting) AppliedPosting {
	return AppliedPosting{
		Application:  newApplication(a.Application),
		PostingTitle: a.PostingTitle,
		Bucket:       a.Bucket.String(),
	}
}

type AppliedPostingList struct {
	Total int64            `json:"total"`
	List  []AppliedPosting `json:"list"`
}
