// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/cigen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_template_error",
			code:    errors.ErrInvalidTemplate,
			message: "separator must be one character",
			wantStr: "[INVALID_TEMPLATE] separator must be one character",
		},
		{
			name:    "scope_order_error",
			code:    errors.ErrScopeOrder,
			message: "released out of order",
			wantStr: "[SCOPE_ORDER] released out of order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidTemplate, "template %q leaves %d characters", "{key}=={value}", 2)
	assert.Equal(t, `template "{key}=={value}" leaves 2 characters`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSinkWrite, "write failed")
		require.NotNil(t, err)

		assert.Equal(t, errors.ErrSinkWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[SINK_WRITE] write failed: disk full", err.Error())
		assert.ErrorIs(t, err, baseErr)
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSpecInvalid, "bad argument").
		WithDetail("index", 3).
		WithDetail("template", "--name {value}")

	assert.Equal(t, 3, err.Details["index"])
	assert.Equal(t, "--name {value}", err.Details["template"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidTemplate, "error 1")
	err2 := errors.New(errors.ErrInvalidTemplate, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with CigenError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrConfigLoad, "x"), errors.ErrConfigLoad, true},
		{"different_code", errors.New(errors.ErrConfigLoad, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileWrite, "denied"), errors.ErrFileWrite, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrInternal, false},
		{"nil_error", nil, errors.ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrSpecParse, errors.GetErrorCode(errors.New(errors.ErrSpecParse, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileNotFound, "cannot read spec")
	specErr := errors.Wrap(fileErr, errors.ErrSpecParse, "failed to load invocation")

	assert.True(t, errors.IsErrorCode(specErr, errors.ErrSpecParse))

	var middle *errors.CigenError
	require.True(t, stderrors.As(specErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileNotFound, middle.Code)

	assert.ErrorIs(t, specErr, rootCause)
}
