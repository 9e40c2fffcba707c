package contact

import (
	"context"
	"testing"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService()

	_, err := svc.Add(ctx, " Ann ", " 1001 ")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Bob", "2001")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Cid", "3001")
	require.NoError(t, err)

	// replacing keeps the position
	c, err := svc.Add(ctx, "Ann", "1002")
	require.NoError(t, err)
	assert.Equal(t, domain.Contact{Name: "Ann", Phone: "1002"}, c)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Contact{
		{Name: "Ann", Phone: "1002"},
		{Name: "Bob", Phone: "2001"},
		{Name: "Cid", Phone: "3001"},
	}, list)

	require.NoError(t, svc.Delete(ctx, "Bob"))
	assert.ErrorIs(t, svc.Delete(ctx, "Bob"), errs.ErrContactNotFound)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Contact{
		{Name: "Ann", Phone: "1002"},
		{Name: "Cid", Phone: "3001"},
	}, list)
}

func TestService_AddInvalid(t *testing.T) {
	t.Parallel()
	svc := NewService()
	for _, tc := range []struct{ name, phone string }{
		{name: "", phone: "1"},
		{name: "Ann", phone: "  "},
	} {
		_, err := svc.Add(context.Background(), tc.name, tc.phone)
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	}
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
