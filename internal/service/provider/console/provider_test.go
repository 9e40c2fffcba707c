package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSender_Send(t *testing.T) {
	t.Parallel()
	s := NewSender()
	assert.NoError(t, s.Send(context.Background(), "1001", "hello"))
}
