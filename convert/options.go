package convert

import (
	"log/slog"

	"github.com/srlehn/imgconv/internal/errors"
)

type Option interface {
	ApplyOption(c *Converter) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Converter) error

func (o OptFunc) ApplyOption(c *Converter) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Converter) error {
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetReader(r ImageReader) Option {
	return OptFunc(func(c *Converter) error {
		if r == nil {
			return errors.New(`nil reader`)
		}
		c.reader = r
		return nil
	})
}

func SetWriter(w ImageWriter) Option {
	return OptFunc(func(c *Converter) error {
		if w == nil {
			return errors.New(`nil writer`)
		}
		c.writer = w
		return nil
	})
}

// SetResizer selects the backend. nil keeps DefaultResizer.
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(c *Converter) error { c.resizer = rsz; return nil })
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(c *Converter) error { c.logger = logger; return nil })
}

func SetFilter(f Filter) Option {
	return OptFunc(func(c *Converter) error {
		if !f.Valid() {
			return errors.New(`invalid filter ` + f.String())
		}
		c.settings.Filter = f
		return nil
	})
}

func SetFormat(f Format) Option {
	return OptFunc(func(c *Converter) error {
		if !f.Valid() {
			return errors.New(`invalid format ` + f.String())
		}
		c.format = f
		return nil
	})
}

func SetAspectLock(lock bool) Option {
	return OptFunc(func(c *Converter) error { c.lock = lock; return nil })
}
