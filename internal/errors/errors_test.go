package errors_test

import (
	stderrors "errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgconv/internal/errors"
)

func TestNewKeepsOrigin(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	e1 := errors.New(`first`)
	e2 := errors.New(e1)
	assert.Same(t, e1, e2)
}

func TestNilParam(t *testing.T) {
	var img *image.NRGBA
	err := errors.NilParam(img)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `nil parameter`)
	assert.NoError(t, errors.NilParam(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
}

func TestStack(t *testing.T) {
	base := stderrors.New(`plain`)
	_, ok := errors.Stack(base)
	assert.False(t, ok)

	stack, ok := errors.Stack(errors.New(base))
	require.True(t, ok)
	assert.True(t, strings.Contains(stack, `errors_test`))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, errors.Join(nil, nil))
	a := stderrors.New(`a`)
	b := stderrors.New(`b`)
	err := errors.Join(a, b)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, a))
	assert.True(t, stderrors.Is(err, b))
}
