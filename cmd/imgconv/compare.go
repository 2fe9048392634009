package main

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
	"github.com/srlehn/imgconv/preview"
)

func init() {
	compareCmd.Flags().IntVar(&compareCellFlag, `cell`, 192, `side length of each sample`)
	compareCmd.Flags().StringVarP(&compareResizerFlag, `resizer`, `r`, convert.DefaultResizerName, `resize backend`)
	rootCmd.AddCommand(compareCmd)
}

var (
	compareCellFlag    int
	compareResizerFlag string
)

var compareCmd = &cobra.Command{
	Use:   compareCmdStr + ` <input> [output.png]`,
	Short: `compare all filters side by side`,
	Long:  `resample the input with every filter and write the samples as labelled png contact sheet`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		run(compareFunc(cmd, args))
	},
}

var compareCmdStr = `compare`

func compareFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		input := args[0]
		output := strings.TrimSuffix(input, filepath.Ext(input)) + `-filters.png`
		if len(args) > 1 {
			output = args[1]
		}
		rsz := convert.ResizerByName(compareResizerFlag)
		if rsz == nil {
			return errors.Errorf(`unknown resizer %q, available: %s`, compareResizerFlag, resizerNames())
		}
		buf, err := (&convert.FileReader{AutoOrient: cfg.AutoOrient, Log: logger}).Load(input)
		if err != nil {
			return err
		}
		sheet, err := preview.ContactSheet(buf, image.Pt(compareCellFlag, compareCellFlag), rsz)
		if err != nil {
			return err
		}
		output = convert.EnsureExtension(output, convert.PNG)
		w := &convert.FileWriter{Options: cfg.EncodeOptions(), Log: logger}
		if err := w.Save(output, convert.BufferFromImage(sheet), convert.PNG); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
}
