package internalauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "builder")

	token, err := s.Issue("sandbox-service", "sandbox-exec")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "builder", claims.Issuer)
	assert.Equal(t, "sandbox-service", claims.Subject)
	assert.Equal(t, "sandbox-exec", claims.Purpose)
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "builder")
	other := NewSigner([]byte("other-secret"), "builder")

	token, err := s.Issue("sub", "purpose")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "builder")

	token, err := s.IssueWithTTL("sub", "purpose", -time.Second)
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsReplay(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "builder")

	token, err := s.Issue("sub", "purpose")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrReplayed)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "builder")

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify("onlyonepart")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
