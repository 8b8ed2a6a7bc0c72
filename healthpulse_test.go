package healthpulse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/healthpulse"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := healthpulse.Errorf(healthpulse.ENOTFOUND, "feed %q not found", "test")

	assert.Equal(t, healthpulse.ENOTFOUND, healthpulse.ErrorCode(err))
	assert.Equal(t, "feed \"test\" not found", healthpulse.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading config: %w", healthpulse.Errorf(healthpulse.EINVALID, "bad selector"))

	assert.Equal(t, healthpulse.EINVALID, healthpulse.ErrorCode(err))
	assert.Equal(t, "bad selector", healthpulse.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, healthpulse.EINTERNAL, healthpulse.ErrorCode(err))
	assert.Equal(t, "connection refused", healthpulse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, healthpulse.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, healthpulse.ErrorMessage(nil))
}
