package signalwire

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "transport",
			err:      transportError(errors.New("dial tcp: connection refused")),
			expected: "HTTP request failed with status: dial tcp: connection refused",
		},
		{
			name:     "unauthorized",
			err:      unauthorizedError(),
			expected: "Unauthorized access",
		},
		{
			name:     "not found",
			err:      notFoundError("subproject", "AC42", `{"status":404}`),
			expected: `Resource not found: subproject "AC42"`,
		},
		{
			name:     "unexpected status",
			err:      statusError(http.StatusInternalServerError, "boom"),
			expected: "Unexpected error: boom",
		},
		{
			name:     "parse failure",
			err:      parseError(http.StatusOK, "{}", errors.New("missing sid")),
			expected: "Unexpected error: failed to parse response: missing sid. Response was: {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	sentinels := []error{ErrTransport, ErrUnauthorized, ErrNotFound, ErrUnexpected}

	tests := []struct {
		err      *Error
		kind     ErrorKind
		sentinel error
	}{
		{transportError(errors.New("x")), KindTransport, ErrTransport},
		{unauthorizedError(), KindUnauthorized, ErrUnauthorized},
		{notFoundError("message", "SM1", ""), KindNotFound, ErrNotFound},
		{statusError(http.StatusBadGateway, ""), KindUnexpected, ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			for _, s := range sentinels {
				assert.Equal(t, s == tt.sentinel, errors.Is(tt.err, s), "sentinel %v", s)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("fetching number: %w", notFoundError("phone number", "pn-1", ""))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsUnauthorized(wrapped))

	var swErr *Error
	assert.ErrorAs(t, wrapped, &swErr)
	assert.True(t, swErr.IsNotFound())
	assert.False(t, swErr.IsUnauthorized())

	assert.True(t, unauthorizedError().IsUnauthorized())
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsUnauthorized(nil))
}

func TestErrorUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("tls handshake timeout")
	err := transportError(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Nil(t, unauthorizedError().Unwrap())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unexpected", KindUnexpected.String())
	assert.Equal(t, "unexpected", ErrorKind(42).String())
}
