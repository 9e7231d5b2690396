package domain

import (
	"testing"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
)

func TestReviewStatus_ValidateOutcome(t *testing.T) {
	testCases := []struct {
		status  ReviewStatus
		wantErr error
	}{
		{status: ReviewStatusNotReviewed, wantErr: bizerr.ErrValidationFailed},
		{status: ReviewStatusNotSuitable},
		{status: ReviewStatusSuitable},
		{status: ReviewStatus(3), wantErr: bizerr.ErrValidationFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			err := tc.status.ValidateOutcome()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
