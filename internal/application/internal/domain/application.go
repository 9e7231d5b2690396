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

import (
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
)

type ReviewStatus uint8

func (s ReviewStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s ReviewStatus) String() string {
	switch s {
	case ReviewStatusNotSuitable:
		return "not_suitable"
	case ReviewStatusSuitable:
		return "suitable"
	default:
		return "not_reviewed"
	}
}

const (
	ReviewStatusNotReviewed ReviewStatus = iota
	ReviewStatusNotSuitable
	ReviewStatusSuitable
)

// ValidateOutcome 招聘方只能给出合适或者不合适
func (s ReviewStatus) ValidateOutcome() error {
	if s != ReviewStatusNotSuitable && s != ReviewStatusSuitable {
		return bizerr.Validation("outcome", "只能是合适或者不合适")
	}
	return nil
}

// Application 候选人对职位的投递，(PostingID, CandidateID) 唯一
type Application struct {
	ID          int64
	PostingID   int64
	CandidateID int64
	// 投递时从职位上复制，职位的发布者不会变
	EmployerID   int64
	CVRef        string
	ReviewStatus ReviewStatus
	AppliedAt    time.Time
	Utime        time.Time
}
