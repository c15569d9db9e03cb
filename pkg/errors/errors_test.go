package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredErrorMessage(t *testing.T) {
	err := New(ErrCodeUnsupportedVersion, "version 7.5 is below the minimum supported release")
	assert.Equal(t, "[UNSUPPORTED_VERSION] version 7.5 is below the minimum supported release", err.Error())
}

func TestStructuredErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeTransportFailure, "failed to fetch version listing", cause)

	assert.Contains(t, err.Error(), "TRANSPORT_FAILURE")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: ""},
		{name: "structured", err: New(ErrCodeNoMatchingInstaller, "no installer"), want: ErrCodeNoMatchingInstaller},
		{
			name: "wrapped structured",
			err:  fmt.Errorf("locate: %w", New(ErrCodeUnsupportedPlatform, "no arm64 build")),
			want: ErrCodeUnsupportedPlatform,
		},
		{name: "plain", err: errors.New("boom"), want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrCodeTransportFailure, "status 503"))
	assert.True(t, HasCode(err, ErrCodeTransportFailure))
	assert.False(t, HasCode(err, ErrCodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeTransportFailure))
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeNoMatchingInstaller, "no installer", map[string]any{
		"version": "11.2.0",
		"os":      "linux",
	})
	assert.Equal(t, "11.2.0", err.Context["version"])
	assert.Equal(t, ErrCodeNoMatchingInstaller, CodeOf(err))
}
