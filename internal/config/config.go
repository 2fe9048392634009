// Package config merges the settings from the config file, the environment
// and a .env file. Command line flags are applied on top by the caller.
package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/rkoesters/xdg/keyfile"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/internal/xdg"
)

const (
	AppName  = `imgconv`
	FileName = `imgconv.conf`
	// Group is the keyfile group holding the settings.
	Group = `imgconv`
	// EnvPrefix is prepended to the environment variable names.
	EnvPrefix = `IMGCONV_`
)

// Config holds the persistent defaults. Names are parsed later so that the
// error can point at the offending value.
type Config struct {
	Filter         string  `env:"FILTER"`
	Format         string  `env:"FORMAT"`
	Resizer        string  `env:"RESIZER"`
	JPEGQuality    int     `env:"JPEG_QUALITY"`
	WebPQuality    float64 `env:"WEBP_QUALITY"`
	WebPLossless   bool    `env:"WEBP_LOSSLESS"`
	PNGCompression string  `env:"PNG_COMPRESSION"`
	AutoOrient     bool    `env:"AUTO_ORIENT"`
	KeepAspect     bool    `env:"KEEP_ASPECT"`
	Workers        int     `env:"WORKERS"`
	LogLevel       string  `env:"LOG_LEVEL"`
}

// Default returns the built in settings.
func Default() Config {
	return Config{
		Filter:         convert.DefaultFilter.Name(),
		Format:         convert.DefaultFormat.String(),
		Resizer:        convert.DefaultResizerName,
		JPEGQuality:    convert.DefaultJPEGQuality,
		WebPQuality:    convert.DefaultWebPQuality,
		PNGCompression: `default`,
		AutoOrient:     true,
		KeepAspect:     true,
		LogLevel:       `info`,
	}
}

// Load reads the keyfile at path, or the user's config file if path is
// empty, then loads ./.env and finally the IMGCONV_* environment variables.
// Missing files are skipped, an explicitly named file has to exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := len(path) > 0
	if !explicit {
		path, _ = xdg.FindConfigFile(AppName, FileName)
	}
	if len(path) > 0 {
		if err := cfg.loadKeyFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, errors.New(err)
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, errors.New(err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadKeyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.New(err)
	}
	defer f.Close()
	kf, err := keyfile.New(f)
	if err != nil {
		return errors.WrapPrefix(err, `config file `+path, 0)
	}
	str := func(k string, dst *string) error {
		if !kf.KeyExists(Group, k) {
			return nil
		}
		v, err := kf.String(Group, k)
		if err != nil {
			return errors.WrapPrefix(err, `key `+k, 0)
		}
		*dst = strings.TrimSpace(v)
		return nil
	}
	boolean := func(k string, dst *bool) error {
		if !kf.KeyExists(Group, k) {
			return nil
		}
		v, err := kf.Bool(Group, k)
		if err != nil {
			return errors.WrapPrefix(err, `key `+k, 0)
		}
		*dst = v
		return nil
	}
	number := func(k string, dst *float64) error {
		if !kf.KeyExists(Group, k) {
			return nil
		}
		v, err := kf.Number(Group, k)
		if err != nil {
			return errors.WrapPrefix(err, `key `+k, 0)
		}
		*dst = v
		return nil
	}
	jpegQuality, workers := float64(c.JPEGQuality), float64(c.Workers)
	err = errors.Join(
		str(`filter`, &c.Filter),
		str(`format`, &c.Format),
		str(`resizer`, &c.Resizer),
		str(`png-compression`, &c.PNGCompression),
		str(`log-level`, &c.LogLevel),
		number(`jpeg-quality`, &jpegQuality),
		number(`webp-quality`, &c.WebPQuality),
		number(`workers`, &workers),
		boolean(`webp-lossless`, &c.WebPLossless),
		boolean(`auto-orient`, &c.AutoOrient),
		boolean(`keep-aspect`, &c.KeepAspect),
	)
	c.JPEGQuality, c.Workers = int(jpegQuality), int(workers)
	return err
}

// Validate checks names and ranges.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.FilterValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.FormatValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PNGLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		errs = append(errs, errors.Errorf(`jpeg-quality %d out of range 1-100`, c.JPEGQuality))
	}
	if c.WebPQuality < 0 || c.WebPQuality > 100 {
		errs = append(errs, errors.Errorf(`webp-quality %g out of range 0-100`, c.WebPQuality))
	}
	if c.Workers < 0 {
		errs = append(errs, errors.Errorf(`negative worker count %d`, c.Workers))
	}
	return errors.Join(errs...)
}

func (c Config) FilterValue() (convert.Filter, error) { return convert.ParseFilter(c.Filter) }

func (c Config) FormatValue() (convert.Format, error) { return convert.ParseFormat(c.Format) }

// PNGLevel accepts default, none, speed and best.
func (c Config) PNGLevel() (convert.PNGCompression, error) {
	switch strings.ToLower(strings.TrimSpace(c.PNGCompression)) {
	case ``, `default`:
		return convert.PNGDefaultCompression, nil
	case `none`, `no`:
		return convert.PNGNoCompression, nil
	case `speed`, `fast`:
		return convert.PNGBestSpeed, nil
	case `best`:
		return convert.PNGBestCompression, nil
	}
	return convert.PNGDefaultCompression, errors.New(`unknown png-compression "` + c.PNGCompression + `"`)
}

// EncodeOptions returns the encoder settings of c.
func (c Config) EncodeOptions() *convert.EncodeOptions {
	lvl, _ := c.PNGLevel()
	return &convert.EncodeOptions{
		JPEGQuality:    c.JPEGQuality,
		WebPQuality:    float32(c.WebPQuality),
		WebPLossless:   c.WebPLossless,
		PNGCompression: lvl,
	}
}
