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

type LockState uint8

func (s LockState) ToUint8() uint8 {
	return uint8(s)
}

const (
	LockStateOpen LockState = iota
	// 管理员锁定，招聘方无法解锁
	LockStateAdminLocked
	// 招聘方自己关闭
	LockStateEmployerClosed
)

// Bucket 职位对外展示的状态，由 LockState、过期时间和审核状态推导
type Bucket uint8

const (
	// BucketUnknown 职位已经被删除
	BucketUnknown Bucket = iota
	BucketAvailable
	BucketPending
	BucketExpired
	BucketAdminLocked
	BucketEmployerClosed
)

// Buckets 全部有效的 Bucket
var Buckets = []Bucket{
	BucketAvailable,
	BucketPending,
	BucketExpired,
	BucketAdminLocked,
	BucketEmployerClosed,
}

func (b Bucket) ToUint8() uint8 {
	return uint8(b)
}

// ParseBucket 无法识别的返回 BucketUnknown，列表查询时表示不限
func ParseBucket(s string) Bucket {
	for _, b := range Buckets {
		if b.String() == s {
			return b
		}
	}
	return BucketUnknown
}

func (b Bucket) String() string {
	switch b {
	case BucketAvailable:
		return "available"
	case BucketPending:
		return "pending"
	case BucketExpired:
		return "expired"
	case BucketAdminLocked:
		return "admin_locked"
	case BucketEmployerClosed:
		return "employer_closed"
	default:
		return "unknown"
	}
}

type Content struct {
	Title       string
	Description string
	Location    string
	Industry    string
	SalaryMin   int64
	SalaryMax   int64
	Headcount   int
	// 最低工作年限
	MinExperience int
}

type Posting struct {
	ID         int64
	EmployerID int64
	Content
	Approved  bool
	LockState LockState
	ExpiresAt time.Time
	Ctime     time.Time
	Utime     time.Time
}

// Bucket 优先级：管理员锁定 > 招聘方关闭 > 过期 > 待审核 > 可投递
func (p Posting) Bucket(now time.Time) Bucket {
	switch {
	case p.LockState == LockStateAdminLocked:
		return BucketAdminLocked
	case p.LockState == LockStateEmployerClosed:
		return BucketEmployerClosed
	case !p.ExpiresAt.After(now):
		return BucketExpired
	case !p.Approved:
		return BucketPending
	default:
		return BucketAvailable
	}
}

func (p Posting) Validate() error {
	switch {
	case p.Title == "":
		return bizerr.Validation("title", "不能为空")
	case p.SalaryMin < 0 || p.SalaryMax < 0:
		return bizerr.Validation("salary", "不能为负数")
	case p.SalaryMax > 0 && p.SalaryMin > p.SalaryMax:
		return bizerr.Validation("salary", "最低薪资大于最高薪资")
	case p.Headcount <= 0:
		return bizerr.Validation("headcount", "必须大于 0")
	case p.MinExperience < 0:
		return bizerr.Validation("minExperience", "不能为负数")
	case p.ExpiresAt.IsZero():
		return bizerr.Validation("expiresAt", "不能为空")
	}
	return nil
}

// Candidate 用于筛选适合候选人的职位
type Candidate struct {
	Industry   string
	Experience int
}

// Suitable 行业相同并且满足最低年限
func (p Posting) Suitable(c Candidate) bool {
	return p.Industry == c.Industry && p.MinExperience <= c.Experience
}

// Query 列表查询条件，Bucket 为 BucketUnknown 时不限状态
type Query struct {
	Bucket     Bucket
	EmployerID int64
	Candidate  *Candidate
	Now        time.Time
}
