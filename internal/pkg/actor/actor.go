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

package actor

import (
	"github.com/ecodeclub/ginx/session"
)

// RoleClaimKey 登录时身份服务写入 jwt 的角色字段
const RoleClaimKey = "role"

type Role uint8

const (
	RoleUnknown Role = iota
	RoleCandidate
	RoleEmployer
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCandidate:
		return "candidate"
	case RoleEmployer:
		return "employer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func ParseRole(s string) Role {
	switch s {
	case "candidate":
		return RoleCandidate
	case "employer":
		return RoleEmployer
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Actor 发起操作的人，每一个生命周期操作都要显式传入
type Actor struct {
	Uid  int64
	Role Role
}

func (a Actor) IsCandidate() bool {
	return a.Role == RoleCandidate
}

func (a Actor) IsEmployer() bool {
	return a.Role == RoleEmployer
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func New(uid int64, role Role) Actor {
	return Actor{Uid: uid, Role: role}
}

// FromSession 从登录态中取出 uid 和角色，不做任何认证
func FromSession(sess session.Session) Actor {
	claims := sess.Claims()
	return Actor{
		Uid:  claims.Uid,
		Role: ParseRole(claims.Get(RoleClaimKey).StringOrDefault("")),
	}
}
