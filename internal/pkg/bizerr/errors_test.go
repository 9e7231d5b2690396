package bizerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForbiddenFamily(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "非发布者", err: ErrNotOwner},
		{name: "非管理员", err: ErrNotAdmin},
		{name: "非招聘方", err: ErrNotEmployer},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, ErrForbidden)
			assert.NotErrorIs(t, tc.err, ErrNotFound)
		})
	}
}

func TestDependency(t *testing.T) {
	assert.NoError(t, Dependency(nil))
	origin := errors.New("mysql 挂了")
	err := Dependency(origin)
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
	assert.ErrorIs(t, err, origin)
}

func TestValidation(t *testing.T) {
	err := Validation("title", "不能为空")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "title")
}
