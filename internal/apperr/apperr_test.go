package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("no")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("store %d", 4)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", Validation("inner"))
	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.Equal(t, "inner", MessageOf(wrapped))
}

func TestBackendKeepsTypedErrors(t *testing.T) {
	assert.Nil(t, Backend("op", nil))

	nf := NotFound("missing")
	assert.Same(t, nf, Backend("lookup", nf))

	cause := errors.New("connection reset")
	err := Backend("list stores", cause)
	assert.True(t, Is(err, KindBackend))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list stores: connection reset", err.Error())
}
