package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTokenRoundTrip(t *testing.T) {
	token, err := GenerateIdentityToken("donor@example.com", "Rahim", "auth.bloodlink", "s3cret", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateIdentityToken(token, "s3cret", "auth.bloodlink")
	require.NoError(t, err)
	assert.Equal(t, "donor@example.com", claims.Email)
	assert.Equal(t, "Rahim", claims.Name)
}

func TestValidateIdentityTokenRejects(t *testing.T) {
	token, err := GenerateIdentityToken("donor@example.com", "", "auth.bloodlink", "s3cret", time.Minute)
	require.NoError(t, err)

	_, err = ValidateIdentityToken(token, "other", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateIdentityToken(token, "s3cret", "someone-else")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	expired, err := GenerateIdentityToken("donor@example.com", "", "", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateIdentityToken(expired, "s3cret", "")
	assert.ErrorIs(t, err, ErrTokenExpired)

	noEmail, err := GenerateIdentityToken("", "x", "", "s3cret", time.Minute)
	require.NoError(t, err)
	_, err = ValidateIdentityToken(noEmail, "s3cret", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
