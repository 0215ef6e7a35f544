package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// TestManager_GenerateAndParse 测试Token生成与解析的完整往返
func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "admin@example.com", "管理员", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.True(t, claims.IsAdmin, "管理员标记应随Token下发")
}

// TestManager_ParseToken_WrongSecret 测试密钥不匹配时拒绝Token
func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager("secret-a", time.Hour, time.Hour)
	m2 := NewManager("secret-b", time.Hour, time.Hour)

	pair, err := m1.GenerateToken(1, "user@example.com", "用户", false)
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestManager_ParseToken_Expired 测试过期Token
func TestManager_ParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, time.Hour)

	pair, err := m.GenerateToken(1, "user@example.com", "用户", false)
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestManager_RefreshAccessToken 测试刷新Access Token
func TestManager_RefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(7, "user@example.com", "用户", false)
	require.NoError(t, err)

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newToken)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
}
