//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"bakery-orders/internal/domain/user"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret", time.Hour, clk)

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		token, err := svc.GenerateToken("owner", user.RoleOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "owner", claims.Username)
		assert.Equal(t, "owner", claims.Role)
		assert.Equal(t, "owner", claims.Subject)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
	})

	t.Run("未知のロールは拒否", func(t *testing.T) {
		token, err := svc.GenerateToken("owner", user.Role("admin"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("期限切れ", func(t *testing.T) {
		token, err := svc.GenerateToken("owner", user.RoleOwner)
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークン", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, clk)
		token, err := other.GenerateToken("owner", user.RoleOwner)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("不正な文字列", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
