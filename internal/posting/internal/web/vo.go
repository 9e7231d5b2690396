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
	"time"

	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
)

type IdReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ListReq Bucket 为空时不限状态
type ListReq struct {
	Bucket string `json:"bucket"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type SaveReq struct {
	Posting Posting `json:"posting"`
}

type Posting struct {
	ID            int64  `json:"id"`
	EmployerID    int64  `json:"employerId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Industry      string `json:"industry"`
	SalaryMin     int64  `json:"salaryMin"`
	SalaryMax     int64  `json:"salaryMax"`
	Headcount     int    `json:"headcount"`
	MinExperience int    `json:"minExperience"`
	Approved      bool   `json:"approved"`
	LockState     uint8  `json:"lockState"`
	Bucket        string `json:"bucket"`
	// 毫秒
	ExpiresAt int64 `json:"expiresAt"`
	Ctime     int64 `json:"ctime"`
	Utime     int64 `json:"utime"`
}

func (p Posting) toDomain() domain.Posting {
	res := domain.Posting{
		ID: p.ID,
		Content: domain.Content{
			Title:         p.Title,
			Description:   p.Description,
			Location:      p.Location,
			Industry:      p.Industry,
			SalaryMin:     p.SalaryMin,
			SalaryMax:     p.SalaryMax,
			Headcount:     p.Headcount,
			MinExperience: p.MinExperience,
		},
	}
	if p.ExpiresAt > 0 {
		res.ExpiresAt = time.UnixMilli(p.ExpiresAt)
	}
	return res
}

func newPosting(p domain.Posting, now time.Time) Posting {
	return Posting{
		ID:            p.ID,
		EmployerID:    p.EmployerID,
		Title:         p.Title,
		Description:   p.Description,
		Location:      p.Location,
		Industry:      p.Industry,
		SalaryMin:     p.SalaryMin,
		SalaryMax:     p.SalaryMax,
		Headcount:     p.Headcount,
		MinExperience: p.MinExperience,
		Approved:      p.Approved,
		LockState:     p.LockState.ToUint8(),
		Bucket:        p.Bucket(now).String(),
		ExpiresAt:     p.ExpiresAt.UnixMilli(),
		Ctime:         p.Ctime.UnixMilli(),
		Utime:         p.Utime.UnixMilli(),
	}
}

type PostingList struct {
	Total int64     `json:"total"`
	List  []Posting `json:"list"`
}
