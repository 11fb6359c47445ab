package service

import (
	"testing"
	"time"

	"stakeledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "stakeledger")

	token, expiresAt, err := svc.Generate(alice)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, alice, claims.Address)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "stakeledger")
	other := NewJWTTokenService("other-secret", time.Hour, "stakeledger")

	token, _, err := svc.Generate(alice)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "stakeledger")

	token, _, err := svc.Generate(alice)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "stakeledger")

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestJWTTokenService_Generate_NullAddressRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "stakeledger")

	// A token minted for the null identity must never validate.
	token, _, err := svc.Generate(domain.ZeroAddress)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
