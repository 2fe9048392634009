package convert

import (
	"github.com/srlehn/imgconv/internal/errors"
)

// ErrorKind classifies load, save and resize failures.
type ErrorKind uint8

const (
	KindOther ErrorKind = iota
	KindIO
	KindDecoding
	KindEncoding
	KindParameter
	KindUnsupported
	KindBuffer // source or target buffer is unusable
	KindResize // the resampling backend failed
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return `io`
	case KindDecoding:
		return `decoding`
	case KindEncoding:
		return `encoding`
	case KindParameter:
		return `parameter`
	case KindUnsupported:
		return `unsupported`
	case KindBuffer:
		return `buffer`
	case KindResize:
		return `resize`
	default:
		return `other`
	}
}

var (
	ErrNoSource  = errors.New(`no source image loaded`)
	ErrNoResizer = errors.New(`no resizer registered`)
	ErrNoEncoder = errors.New(`no encoder registered`)
)

// LoadError is returned when an input image can't be read or decoded.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return `load error (` + e.Kind.String() + `): ` + errString(e.Err)
}
func (e *LoadError) Unwrap() error { return e.Err }

// SaveError is returned when an output image can't be encoded or written.
type SaveError struct {
	Kind ErrorKind
	Err  error
}

func (e *SaveError) Error() string {
	return `save error (` + e.Kind.String() + `): ` + errString(e.Err)
}
func (e *SaveError) Unwrap() error { return e.Err }

// ResizeError is returned by Resample.
type ResizeError struct {
	Kind ErrorKind
	Err  error
}

func (e *ResizeError) Error() string {
	return `resize error (` + e.Kind.String() + `): ` + errString(e.Err)
}
func (e *ResizeError) Unwrap() error { return e.Err }

func errString(err error) string {
	if err == nil {
		return `<nil>`
	}
	return err.Error()
}

func toErr(cause any) error {
	switch c := cause.(type) {
	case nil:
		return nil
	case error:
		return c
	case string:
		return errors.New(c)
	default:
		return errors.Errorf(`%v`, c)
	}
}

func newLoadError(kind ErrorKind, cause any) error {
	return errors.Wrap(&LoadError{Kind: kind, Err: toErr(cause)}, 1)
}

func newSaveError(kind ErrorKind, cause any) error {
	return errors.Wrap(&SaveError{Kind: kind, Err: toErr(cause)}, 1)
}

func newResizeError(kind ErrorKind, cause any) error {
	return errors.Wrap(&ResizeError{Kind: kind, Err: toErr(cause)}, 1)
}

// saveErrorFrom maps errors surfacing while saving onto SaveError. A failed
// resize becomes KindOther, other untyped failures become fallback.
func saveErrorFrom(err error, fallback ErrorKind) error {
	if err == nil {
		return nil
	}
	var se *SaveError
	if errors.As(err, &se) {
		return err
	}
	var re *ResizeError
	if errors.As(err, &re) {
		return newSaveError(KindOther, err)
	}
	return newSaveError(fallback, err)
}

// KindOf returns the kind of the first typed convert error in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind, true
	}
	var se *SaveError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	var re *ResizeError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return KindOther, false
}
