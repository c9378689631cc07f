package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_Issue(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := NewJWTIssuer("s3cret", 15*time.Minute)

	signed, exp, err := issuer.Issue("u-1", 4, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), exp)

	tok, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) { return []byte("s3cret"), nil })
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "u-1", claims["sub"])
	assert.EqualValues(t, 4, claims["tv"])
	assert.EqualValues(t, exp.Unix(), claims["exp"])
	assert.Equal(t, jwt.SigningMethodHS256, tok.Method)
}
