package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/batch"
)

func init() {
	batchFlags.register(batchCmd.Flags())
	batchCmd.Flags().StringVarP(&batchOutDirFlag, `out-dir`, `o`, ``, `output directory (default: next to each input)`)
	batchCmd.Flags().IntVarP(&batchJobsFlag, `jobs`, `j`, 0, `concurrent conversions (default: configured workers or one per cpu)`)
	batchCmd.Flags().BoolVar(&batchFailFastFlag, `fail-fast`, false, `stop after the first failure`)
	rootCmd.AddCommand(batchCmd)
}

var (
	batchFlags        convFlags
	batchOutDirFlag   string
	batchJobsFlag     int
	batchFailFastFlag bool
)

var batchCmd = &cobra.Command{
	Use:   batchCmdStr + ` <input>...`,
	Short: `convert many images`,
	Long: `convert many images with the same settings.
If only one of --width and --height is given, the other side follows the aspect ratio of each image.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(batchFunc(cmd, args))
	},
}

var batchCmdStr = `batch`

func batchFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		filter, err := batchFlags.Filter()
		if err != nil {
			return err
		}
		format, err := batchFlags.Format(``)
		if err != nil {
			return err
		}
		rsz, err := batchFlags.Resizer()
		if err != nil {
			return err
		}
		encOpts, err := batchFlags.EncodeOptions(rsz)
		if err != nil {
			return err
		}
		w, h, err := batchFlags.Size()
		if err != nil {
			return err
		}
		if len(batchOutDirFlag) > 0 {
			if err := os.MkdirAll(batchOutDirFlag, 0o755); err != nil {
				return err
			}
		}
		workers := cfg.Workers
		if batchJobsFlag > 0 {
			workers = batchJobsFlag
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		results, err := batch.Run(ctx, args, batch.Options{
			OutDir:     batchOutDirFlag,
			Format:     format,
			Width:      w,
			Height:     h,
			Filter:     filter,
			Resizer:    rsz,
			Encode:     encOpts,
			AutoOrient: batchFlags.AutoOrient(),
			Workers:    workers,
			FailFast:   batchFailFastFlag,
			Logger:     logger,
		})
		out := cmd.OutOrStdout()
		var ok int
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(out, "%s\tfailed\n", r.Input)
				continue
			}
			ok++
			var size string
			if fi, err := os.Stat(r.Output); err == nil {
				size = humanize.Bytes(uint64(fi.Size()))
			}
			fmt.Fprintf(out, "%s\t%s\t%dx%d\t%s\n", r.Input, r.Output, r.Size.X, r.Size.Y, size)
		}
		fmt.Fprintf(out, "%d of %d converted\n", ok, len(results))
		return err
	}
}
