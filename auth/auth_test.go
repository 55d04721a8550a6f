// SPDX-License-Identifier: GPL-3.0-only

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCredentials(t *testing.T) {
	assert.True(t, VerifyCredentials("nate_", "Nathan1!", "nate_", "Nathan1!"))
	assert.False(t, VerifyCredentials("nate_", "nathan1!", "nate_", "Nathan1!"))
	assert.False(t, VerifyCredentials("kyl_1", "Nathan1!", "nate_", "Nathan1!"))
}

func TestNewAccountRules(t *testing.T) {
	_, err := NewAccount("kyle!!!!!!!", "Ch&&sec@ke99!")
	assert.ErrorIs(t, err, ErrUsernameFormat)

	_, err = NewAccount("kyl_1", "password")
	assert.ErrorIs(t, err, ErrPasswordFormat)
}

func TestAccountLogin(t *testing.T) {
	acc, err := NewAccount("kyl_1", "Ch&&sec@ke99!")
	require.NoError(t, err)
	assert.NotEqual(t, "Ch&&sec@ke99!", acc.PasswordHash)

	assert.True(t, acc.Login("kyl_1", "Ch&&sec@ke99!"))
	assert.False(t, acc.Login("kyl_1", "wrong"))
	assert.False(t, acc.Login("kyl_2", "Ch&&sec@ke99!"))
}

func TestLoginStatus(t *testing.T) {
	assert.Equal(t, "Login successful.", LoginStatus(true))
	assert.Equal(t, "Login failed.", LoginStatus(false))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := IssueToken(secret, "nate_")
	require.NoError(t, err)

	sub, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "nate_", sub)

	_, err = ParseToken([]byte("other-secret"), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(secret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = IssueToken(nil, "nate_")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	past := time.Now().Add(-2 * time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "nate_",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(secret, tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
