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
package dao

type Posting struct {
	// 由 snowflake 生成
	Id            int64  `gorm:"primaryKey;autoIncrement:false"`
	EmployerId    int64  `gorm:"index"`
	Title         string `gorm:"type:varchar(256);not null"`
	Description   string `gorm:"type:text"`
	Location      string `gorm:"type:varchar(128)"`
	Industry      string `gorm:"type:varchar(64);index:idx_industry_exp"`
	SalaryMin     int64
	SalaryMax     int64
	Headcount     int
	MinExperience int   `gorm:"index:idx_industry_exp"`
	Approved      bool  `gorm:"index:idx_bucket,priority:3"`
	LockState     uint8 `gorm:"type:tinyint(3);not null;default:0;index:idx_bucket,priority:1;comment:0-开放 1-管理员锁定 2-招聘方关闭"`
	// 毫秒
	ExpiresAt int64 `gorm:"index:idx_bucket,priority:2"`
	Ctime     int64
	Utime     int64
}

// Query 列表查询条件，零值表示不限
type Query struct {
	Bucket     uint8
	EmployerId int64
	Candidate  *CandidateCond
	// 毫秒，用于判定是否过期
	Now int64
}

type CandidateCond struct {
	Industry   string
	Experience int
}
