package convert

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := newLoadError(KindIO, fs.ErrNotExist)
	var le *LoadError
	if !assert.True(t, errors.As(err, &le)) {
		return
	}
	assert.Equal(t, KindIO, le.Kind)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), `load error (io)`)

	kind, ok := KindOf(newSaveError(KindEncoding, `x`))
	assert.True(t, ok)
	assert.Equal(t, KindEncoding, kind)

	_, ok = KindOf(errors.New(`plain`))
	assert.False(t, ok)
}

func TestSaveErrorFrom(t *testing.T) {
	assert.NoError(t, saveErrorFrom(nil, KindEncoding))

	err := saveErrorFrom(newResizeError(KindResize, `boom`), KindEncoding)
	var se *SaveError
	if assert.True(t, errors.As(err, &se)) {
		assert.Equal(t, KindOther, se.Kind)
	}
	var re *ResizeError
	assert.True(t, errors.As(err, &re))

	orig := newSaveError(KindIO, `disk full`)
	err = saveErrorFrom(orig, KindEncoding)
	kind, _ := KindOf(err)
	assert.Equal(t, KindIO, kind)

	err = saveErrorFrom(errors.New(`codec`), KindEncoding)
	kind, _ = KindOf(err)
	assert.Equal(t, KindEncoding, kind)
}
