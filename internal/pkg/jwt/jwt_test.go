package jwt

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

// payload 서명 검증 없이 두 번째 구간만 디코드
func payload(t *testing.T, token string) map[string]interface{} {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func signed(t *testing.T, method jwt.SigningMethod, claims Claims, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestGenerateToken(t *testing.T) {
	t.Run("user_id claim and lifetime", func(t *testing.T) {
		token, err := GenerateToken(42, testSecret, 24)
		require.NoError(t, err)

		// 미들웨어는 user_id 만 읽는다
		p := payload(t, token)
		assert.Equal(t, float64(42), p["user_id"])

		iat := int64(p["iat"].(float64))
		exp := int64(p["exp"].(float64))
		nbf := int64(p["nbf"].(float64))
		assert.Equal(t, int64(24*time.Hour/time.Second), exp-iat)
		assert.Equal(t, iat, nbf)
		assert.InDelta(t, time.Now().Unix(), iat, 5)
	})

	t.Run("signed with HS256", func(t *testing.T) {
		token, err := GenerateToken(1, testSecret, 1)
		require.NoError(t, err)

		parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
		require.NoError(t, err)
		assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
	})
}

func TestParseToken(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken(7, testSecret, 1)
		require.NoError(t, err)

		claims, err := ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateToken(7, testSecret, -1)
		require.NoError(t, err)

		claims, err := ParseToken(token, testSecret)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})

	now := time.Now()
	live := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	valid := signed(t, jwt.SigningMethodHS256, Claims{UserID: 7, RegisteredClaims: live}, []byte(testSecret))

	// 만료가 아닌 실패는 모두 ErrInvalidToken
	invalid := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "not.a.jwt"},
		{"wrong secret", signed(t, jwt.SigningMethodHS256, Claims{UserID: 7, RegisteredClaims: live}, []byte("other-secret"))},
		{"other hmac alg", signed(t, jwt.SigningMethodHS512, Claims{UserID: 7, RegisteredClaims: live}, []byte(testSecret))},
		{"alg none", signed(t, jwt.SigningMethodNone, Claims{UserID: 7, RegisteredClaims: live}, jwt.UnsafeAllowNoneSignatureType)},
		{"not yet valid", signed(t, jwt.SigningMethodHS256, Claims{UserID: 7, RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		}}, []byte(testSecret))},
		{"tampered user_id", tamperUserID(t, valid, 8)},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.token, testSecret)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

// tamperUserID 서명은 그대로 두고 payload 의 user_id 만 바꾼다
func tamperUserID(t *testing.T, token string, userID int64) string {
	t.Helper()
	parts := strings.Split(token, ".")
	p := payload(t, token)
	p["user_id"] = userID

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(raw)
	return strings.Join(parts, ".")
}

func TestTokenRoundTrip(t *testing.T) {
	for _, userID := range []int64{1, 1 << 40, 1<<53 + 1} {
		token, err := GenerateToken(userID, testSecret, 24)
		require.NoError(t, err)

		claims, err := ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	}
}
