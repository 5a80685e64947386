package jwt

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardossantis/nestTasksManager/pkg/auth"
)

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Username: "alice"}
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", time.Hour)
	user := testUser()

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := gen.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "tasks-service", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", -time.Minute)

	token, err := gen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = gen.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyDifferentKey(t *testing.T) {
	issuer := NewGenerator("key-one", "tasks-service", time.Hour)
	verifier := NewGenerator("key-two", "tasks-service", time.Hour)

	token, err := issuer.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignAlgorithm(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", time.Hour)
	user := testUser()

	// Same key, different HMAC variant: the verifier pins HS256.
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "tasks-service",
			Subject:   user.ID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
		},
		Username: user.Username,
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = gen.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	issuer := NewGenerator("test-secret", "other-service", time.Hour)
	verifier := NewGenerator("test-secret", "tasks-service", time.Hour)

	token, err := issuer.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := gen.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}
