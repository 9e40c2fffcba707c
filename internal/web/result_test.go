package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		err  error
		want int
	}{
		{err: errs.ErrEmptyMessage, want: http.StatusBadRequest},
		{err: errs.ErrEmptyRecipientSet, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: x", errs.ErrInvalidParameter), want: http.StatusBadRequest},
		{err: errs.ErrJobNotFound, want: http.StatusNotFound},
		{err: errs.ErrDraftNotFound, want: http.StatusNotFound},
		{err: errs.ErrJobFiring, want: http.StatusConflict},
		{err: errors.New("db down"), want: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}
