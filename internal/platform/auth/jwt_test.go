package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParse(t *testing.T) {
	v := NewVerifier("secret")
	tok, err := v.CreateAccessToken("user-1", "admin", "a@example.com", time.Minute)
	require.NoError(t, err)

	c, err := v.ParseValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Sub)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, "a@example.com", c.Email)
}

func TestParseValidate_Rejects(t *testing.T) {
	v := NewVerifier("secret")

	expired, err := v.CreateAccessToken("user-1", "user", "", -time.Minute)
	require.NoError(t, err)
	_, err = v.ParseValidate(expired)
	assert.Error(t, err)

	foreign, err := NewVerifier("other").CreateAccessToken("user-1", "user", "", time.Minute)
	require.NoError(t, err)
	_, err = v.ParseValidate(foreign)
	assert.Error(t, err)

	noSub, err := v.CreateAccessToken("", "user", "", time.Minute)
	require.NoError(t, err)
	_, err = v.ParseValidate(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.ParseValidate("garbage")
	assert.Error(t, err)
}

func TestClaimsContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{Sub: "u"})
	c, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u", c.Sub)
}
