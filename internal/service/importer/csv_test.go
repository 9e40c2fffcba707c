package importer

import (
	"strings"
	"testing"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		want      []domain.Recipient
		wantErr   error
		errSubstr string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "phone and name",
			input: "1001,Ann\n1002, Bob \n",
			want: []domain.Recipient{
				{Name: "Ann", Phone: "1001"},
				{Name: "Bob", Phone: "1002"},
			},
		},
		{
			name:  "name optional and extra columns ignored",
			input: "1001\n1002,Bob,vip\n",
			want: []domain.Recipient{
				{Phone: "1001"},
				{Name: "Bob", Phone: "1002"},
			},
		},
		{
			name:  "blank rows skipped",
			input: "1001,Ann\n\n , \n1002,Bob\n",
			want: []domain.Recipient{
				{Name: "Ann", Phone: "1001"},
				{Name: "Bob", Phone: "1002"},
			},
		},
		{
			name:      "empty phone",
			input:     "1001,Ann\n,Bob\n",
			wantErr:   errs.ErrInvalidParameter,
			errSubstr: "line 2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCSV(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, err.Error(), tc.errSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
