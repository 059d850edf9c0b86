//go:build unit

package sessiontoken_test

import (
	"testing"
	"time"

	"hotelcart/internal/pkg/sessiontoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	svc := sessiontoken.NewService("secret", time.Hour)
	sessionID := uuid.New()

	token, err := svc.Issue(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := sessiontoken.NewService("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = sessiontoken.NewService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	token, err := sessiontoken.NewService("secret", -time.Minute).Issue(uuid.New())
	require.NoError(t, err)

	_, err = sessiontoken.NewService("secret", -time.Minute).Validate(token)
	assert.ErrorIs(t, err, sessiontoken.ErrExpiredToken)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := sessiontoken.NewService("secret", time.Hour).Validate("not-a-token")
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}
