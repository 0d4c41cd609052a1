package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := WrapError(errors.New("no such file"), EMISSING, "cannot open %s", "post.md")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "cannot open post.md", UserMessage(err))
	wrapped := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped), "code should survive wrapping")
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestErrorWithNilCause(t *testing.T) {
	err := WrapError(nil, EUNSAFE, "link target rejected")
	assert.Equal(t, EUNSAFE, Code(err))
	assert.Contains(t, err.Error(), "unsafe content")
	err = Error(EINVALID, "bad depth %d", -1)
	assert.Equal(t, "bad depth -1", UserMessage(err))
}
