//go:build unit

package user_test

import (
	"testing"

	"bakery-orders/internal/domain/user"
	"bakery-orders/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Identity{}, user.Username{}),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestIdentity(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("owner")
		expected, _ := user.NewIdentity(username, user.RoleOwner)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Identity mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, actual.Role().CanManageOrders())
	})

	t.Run("ユーザー名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なユーザー名OK",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("deliciasdadioliveira") },
			},
			{
				name:   "前後の空白は除去OK",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("  owner ") },
			},
			{
				name:   "空のユーザー名NG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "短すぎるNG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "空白を含むNG",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("dona maria") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "owner ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "viewer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	creds, err := user.NewCredentials("owner", "delicias123")
	require.NoError(t, err)
	assert.Equal(t, "owner", creds.Username().Value())
	assert.Equal(t, "delicias123", creds.Password().Value())

	_, err = user.NewCredentials("owner", "")
	assert.ErrorIs(t, err, user.ErrEmptyPassword)

	_, err = user.NewCredentials("", "delicias123")
	assert.ErrorIs(t, err, user.ErrInvalidUsername)
}

func TestViewerCannotManageOrders(t *testing.T) {
	assert.False(t, user.RoleViewer.CanManageOrders())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
