package actor

import (
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/stretchr/testify/assert"
)

func TestFromSession(t *testing.T) {
	testCases := []struct {
		name   string
		claims session.Claims
		want   Actor
	}{
		{
			name: "候选人",
			claims: session.Claims{
				Uid:  1,
				Data: map[string]string{RoleClaimKey: "candidate"},
			},
			want: Actor{Uid: 1, Role: RoleCandidate},
		},
		{
			name: "招聘方",
			claims: session.Claims{
				Uid:  2,
				Data: map[string]string{RoleClaimKey: "employer"},
			},
			want: Actor{Uid: 2, Role: RoleEmployer},
		},
		{
			name: "管理员",
			claims: session.Claims{
				Uid:  3,
				Data: map[string]string{RoleClaimKey: "admin"},
			},
			want: Actor{Uid: 3, Role: RoleAdmin},
		},
		{
			name: "没有角色",
			claims: session.Claims{
				Uid:  4,
				Data: map[string]string{},
			},
			want: Actor{Uid: 4, Role: RoleUnknown},
		},
		{
			name: "非法角色",
			claims: session.Claims{
				Uid:  5,
				Data: map[string]string{RoleClaimKey: "root"},
			},
			want: Actor{Uid: 5, Role: RoleUnknown},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromSession(session.NewMemorySession(tc.claims))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole_String(t *testing.T) {
	for _, r := range []Role{RoleCandidate, RoleEmployer, RoleAdmin} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
	assert.Equal(t, "unknown", RoleUnknown.String())
}
