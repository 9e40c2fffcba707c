package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Success", Succeeded().String())
	assert.Equal(t, "Failed: no signal", Failed("no signal").String())
}

func TestParseOutcome(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want Outcome
	}{
		{name: "success", text: "Success", want: Succeeded()},
		{name: "failure", text: "Failed: timeout", want: Failed("timeout")},
		{name: "failure with colon in reason", text: "Failed: code: 500", want: Failed("code: 500")},
		{name: "unknown text", text: "weird", want: Failed("weird")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseOutcome(tc.text)
			assert.Equal(t, tc.want, got)
		})
	}
}
