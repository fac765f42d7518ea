package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	assert.True(t, IsKind(Validation("empty input"), KindValidation))
	assert.True(t, IsKind(NotFound("no such game"), KindNotFound))
	assert.False(t, IsKind(NotFound("no such game"), KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindStorage))
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("append failed: %w", Storage("write failed", cause))

	assert.True(t, IsKind(err, KindStorage))
	assert.True(t, errors.Is(err, cause))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Provider("completion provider failed", cause)

	assert.Contains(t, err.Error(), "completion provider failed")
	assert.Contains(t, err.Error(), "connection refused")
}
