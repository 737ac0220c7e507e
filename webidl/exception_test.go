package webidl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDOMExceptionError(t *testing.T) {
	assert.Equal(t, "SyntaxError: the string did not match the expected pattern", ErrSyntax.Error())
	assert.Equal(t, "NotFoundError", (&DOMException{Name: "NotFoundError", Code: 8}).Error())
}

func TestSyntaxErrorSurvivesWrapping(t *testing.T) {
	err := errors.WithStack(ErrSyntax)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Equal(t, ErrSyntax, errors.Cause(err))
	assert.Equal(t, ErrSyntax.Error(), err.Error())
}
