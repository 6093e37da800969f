package apierr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEnvelope_UntaggedErrorDefaultsToInternal(t *testing.T) {
	env, status := apierr.ToEnvelope(errors.New("boom"))
	assert.Equal(t, apierr.KindInternal, env.Kind)
	assert.False(t, env.Retryable)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", env.ErrorMessage)
}

func TestToEnvelope_TaggedErrorMapsStatusAndRetryable(t *testing.T) {
	err := apierr.New(apierr.KindTimeout, "llm call timed out")
	env, status := apierr.ToEnvelope(err)
	assert.Equal(t, apierr.KindTimeout, env.Kind)
	assert.True(t, env.Retryable)
	assert.Equal(t, http.StatusGatewayTimeout, status)
}

func TestToEnvelope_ValidationErrorIsNotRetryable(t *testing.T) {
	err := apierr.New(apierr.KindValidation, "bad request")
	env, status := apierr.ToEnvelope(err)
	assert.False(t, env.Retryable)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestToEnvelope_ComplianceBlockNeverFailsTheRequest(t *testing.T) {
	// A compliance block is feedback into the dev iteration loop, not a
	// failed HTTP request: it must surface as 200.
	err := apierr.New(apierr.KindComplianceBlock, "critical issues found").WithDetails([]string{"sql-injection"})
	env, status := apierr.ToEnvelope(err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"sql-injection"}, env.Details)
}

func TestWrap_PreservesCauseForErrorsIs(t *testing.T) {
	cause := errors.New("connection refused")
	err := apierr.Wrap(apierr.KindSandboxCommand, "sandbox exec failed", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNew_HasNoWrappedCause(t *testing.T) {
	err := apierr.New(apierr.KindNotFound, "session not found")
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "session not found", err.Error())
}

func TestUnknownKindDefaultsToInternalServerError(t *testing.T) {
	// A Kind with no httpStatus entry (shouldn't happen for the fixed
	// taxonomy, but the mapping must not panic) falls back to 500.
	err := &apierr.Error{Kind: apierr.Kind("SomeUnmappedKind"), Message: "weird"}
	_, status := apierr.ToEnvelope(err)
	assert.Equal(t, http.StatusInternalServerError, status)
}
