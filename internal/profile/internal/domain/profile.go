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

import "github.com/ecodeclub/jobboard/internal/pkg/bizerr"

// Profile 候选人和招聘方共用，Industry 和 Experience 用于匹配职位
type Profile struct {
	Uid        int64
	Nickname   string
	Email      string
	Industry   string
	Experience int
	Utime      int64
}

func (p Profile) Validate() error {
	if p.Experience < 0 {
		return bizerr.Validation("experience", "不能为负数")
	}
	return nil
}
