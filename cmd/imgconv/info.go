package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   infoCmdStr + ` <input>...`,
	Short: `print image properties`,
	Long:  `print size, media type and file size of images`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(cmd, args))
	},
}

var infoCmdStr = `info`

func infoFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		out := cmd.OutOrStdout()
		var errs []error
		for _, path := range args {
			img := convert.NewImageFileName(path)
			img.AutoOrient = cfg.AutoOrient
			if err := img.Decode(); err != nil {
				errs = append(errs, errors.WrapPrefix(err, path, 0))
				continue
			}
			var size string
			if fi, err := os.Stat(path); err == nil {
				size = humanize.Bytes(uint64(fi.Size()))
			}
			format := `-`
			if f, ok := img.SourceFormat(); ok {
				format = f.String()
			}
			b := img.Bounds()
			fmt.Fprintf(out, "%s\t%dx%d\t%s\t%s\t%s\n", path, b.Dx(), b.Dy(), img.MIME, format, size)
		}
		return errors.Join(errs...)
	}
}
