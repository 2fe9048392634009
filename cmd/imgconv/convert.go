package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/batch"
	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() {
	convertFlags.register(convertCmd.Flags())
	rootCmd.AddCommand(convertCmd)
}

var convertFlags convFlags

var convertCmd = &cobra.Command{
	Use:   convertCmdStr + ` <input> [output]`,
	Short: `convert one image`,
	Long: `convert one image and write it next to the input or to output.
The output format is taken from --format, the extension of output or the configuration.
The extension of the format is appended unless output already ends with it.
The check is case-sensitive: out.JPG is written as out.JPG.jpg.
ico output contains nine frames with a longer side of 16, 24, 32, 48, 64, 72,
96, 128 and 256 pixels, all scaled from the resized image.
With --ico-single only the resized image is written.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		run(convertFunc(cmd, args))
	},
}

var convertCmdStr = `convert`

func convertFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		input := args[0]
		var output string
		if len(args) > 1 {
			output = args[1]
		}
		conv, err := newConverter(&convertFlags, output)
		if err != nil {
			return err
		}
		if len(output) == 0 {
			output = batch.OutputPath(input, ``, conv.Format())
			if output == input {
				return errors.New(`output would overwrite input ` + input + `, name an output file`)
			}
		}
		if err := loadSource(conv, &convertFlags, input); err != nil {
			return err
		}
		path, err := conv.Save(output)
		if err != nil {
			return err
		}
		var size string
		if fi, err := os.Stat(path); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		st := conv.Settings()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dx%d\t%s\t%s\n", path, st.Width, st.Height, st.Filter, size)
		return nil
	}
}

// newConverter builds a session from the flags and the configuration.
func newConverter(f *convFlags, output string) (*convert.Converter, error) {
	filter, err := f.Filter()
	if err != nil {
		return nil, err
	}
	format, err := f.Format(output)
	if err != nil {
		return nil, err
	}
	rsz, err := f.Resizer()
	if err != nil {
		return nil, err
	}
	encOpts, err := f.EncodeOptions(rsz)
	if err != nil {
		return nil, err
	}
	return convert.NewConverter(
		convert.SetLogger(logger),
		convert.SetResizer(rsz),
		convert.SetFilter(filter),
		convert.SetFormat(format),
		convert.SetAspectLock(f.KeepAspect()),
		convert.SetReader(&convert.FileReader{AutoOrient: f.AutoOrient(), Log: logger}),
		convert.SetWriter(&convert.FileWriter{Options: encOpts, Log: logger}),
	)
}

// loadSource decodes input into conv and applies the requested size.
func loadSource(conv *convert.Converter, f *convFlags, input string) error {
	w, h, err := f.Size()
	if err != nil {
		return err
	}
	buf, err := (&convert.FileReader{AutoOrient: f.AutoOrient(), Log: logger}).Load(input)
	if err != nil {
		return err
	}
	if buf == nil {
		return errors.New(`no image decoded from ` + input)
	}
	if err := conv.SetSource(buf); err != nil {
		return err
	}
	conv.SetTargetSize(w, h)
	return nil
}
