// Package batch converts many images with shared settings.
package batch

import (
	"context"
	"image"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/internal/logx"
)

// Options are shared by all jobs of a run.
type Options struct {
	// OutDir receives the outputs. Empty means next to the input.
	OutDir string
	Format convert.Format
	// Width and Height of the outputs. 0 means the source size, if only one
	// side is 0 it follows the aspect ratio of the source.
	Width, Height int
	Filter        convert.Filter
	Resizer       convert.Resizer
	Encode        *convert.EncodeOptions
	AutoOrient    bool
	// Workers limits the concurrent jobs. 0 means one per logical CPU.
	Workers int
	// FailFast cancels outstanding jobs after the first failure.
	FailFast bool
	Logger   *slog.Logger
}

// Result of one input.
type Result struct {
	Input  string
	Output string
	Size   image.Point
	Err    error
}

type logProv struct{ l *slog.Logger }

func (p logProv) Logger() *slog.Logger { return p.l }

// DefaultWorkers is the number of logical CPUs.
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Run converts all inputs. The results are in input order. The returned
// error joins all job errors, jobs skipped after a failure with FailFast
// report the context error.
func Run(ctx context.Context, inputs []string, opts Options) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !opts.Format.Valid() {
		return nil, errors.New(`invalid output format ` + opts.Format.String())
	}
	if !opts.Filter.Valid() {
		return nil, errors.New(`invalid filter ` + opts.Filter.String())
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, errors.New(`negative target size`)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers()
	}
	prov := logProv{l: opts.Logger}
	logx.Info(`batch started`, prov, `inputs`, len(inputs), `workers`, workers, `format`, opts.Format.String())

	results := make([]Result, len(inputs))
	var (
		g    *errgroup.Group
		gctx = ctx
	)
	if opts.FailFast {
		g, gctx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(workers)
	for i, input := range inputs {
		i, input := i, input
		results[i].Input = input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = errors.New(err)
				return nil
			}
			out, size, err := convertOne(gctx, input, opts)
			results[i].Output, results[i].Size, results[i].Err = out, size, err
			if logx.IsErr(err, prov, slog.LevelError, `input`, input) {
				if opts.FailFast {
					return err
				}
				return nil
			}
			logx.Debug(`converted`, prov, `input`, input, `output`, out)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

func convertOne(ctx context.Context, input string, opts Options) (string, image.Point, error) {
	reader := &convert.FileReader{AutoOrient: opts.AutoOrient, Log: opts.Logger}
	buf, err := reader.Load(input)
	if err != nil {
		return ``, image.Point{}, err
	}
	if err := ctx.Err(); err != nil {
		return ``, image.Point{}, errors.New(err)
	}
	encOpts := opts.Encode
	if encOpts == nil {
		encOpts = convert.DefaultEncodeOptions()
	}
	if encOpts.Resizer == nil {
		eo := *encOpts
		eo.Resizer = opts.Resizer
		encOpts = &eo
	}
	conv, err := convert.NewConverter(
		convert.SetReader(reader),
		convert.SetWriter(&convert.FileWriter{Options: encOpts, Log: opts.Logger}),
		convert.SetResizer(opts.Resizer),
		convert.SetLogger(opts.Logger),
		convert.SetFilter(opts.Filter),
		convert.SetFormat(opts.Format),
	)
	if err != nil {
		return ``, image.Point{}, err
	}
	if err := conv.SetSource(buf); err != nil {
		return ``, image.Point{}, err
	}
	conv.SetTargetSize(opts.Width, opts.Height)
	output := OutputPath(input, opts.OutDir, opts.Format)
	if abs(output) == abs(input) {
		return ``, image.Point{}, errors.New(`output would overwrite input ` + input)
	}
	size := conv.Settings().Size()
	out, err := conv.Save(output)
	return out, size, err
}

// OutputPath is <outDir>/<input base name without extension>.<ext of f>.
// An empty outDir selects the directory of input.
func OutputPath(input, outDir string, f convert.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if len(outDir) == 0 {
		outDir = filepath.Dir(input)
	}
	return convert.EnsureExtension(filepath.Join(outDir, base), f)
}

func abs(p string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return p
}
