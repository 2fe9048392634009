package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/preview"
)

func init() {
	previewFlags.register(previewCmd.Flags())
	previewCmd.Flags().BoolVar(&previewOnceFlag, `once`, false, `print the preview once instead of starting the interactive screen`)
	previewCmd.Flags().BoolVar(&previewSixelFlag, `sixel`, false, `print the preview as sixel image (implies --once)`)
	previewCmd.Flags().BoolVar(&previewASCIIFlag, `ascii`, false, `render without colors`)
	rootCmd.AddCommand(previewCmd)
}

var (
	previewFlags     convFlags
	previewOnceFlag  bool
	previewSixelFlag bool
	previewASCIIFlag bool
)

var previewCmd = &cobra.Command{
	Use:   previewCmdStr + ` <input>`,
	Short: `preview a conversion in the terminal`,
	Long: `preview a conversion in the terminal.
The interactive screen changes size, filter and format with the keyboard and saves with "s".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(previewFunc(cmd, args))
	},
}

var previewCmdStr = `preview`

func previewFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		conv, err := newConverter(&previewFlags, ``)
		if err != nil {
			return err
		}
		if err := conv.Load(args[0]); err != nil {
			return err
		}
		w, h, err := previewFlags.Size()
		if err != nil {
			return err
		}
		conv.SetTargetSize(w, h)
		rsz, err := previewFlags.Resizer()
		if err != nil {
			return err
		}
		blocks := preview.NewBlocks()
		blocks.Resizer = rsz
		if previewASCIIFlag {
			blocks.Profile = termenv.Ascii
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !previewOnceFlag && !previewSixelFlag {
			_, err := tea.NewProgram(preview.NewModel(ctx, conv, blocks), tea.WithAltScreen()).Run()
			return err
		}
		buf, err := conv.Preview(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if previewSixelFlag {
			// sixel images are scaled in pixels, assume 10x20 pixel cells
			cells := preview.TerminalSize()
			return preview.Sixel(out, buf, image.Pt(cells.X*10, (cells.Y-2)*20), rsz)
		}
		cells := preview.TerminalSize()
		cells.Y = max(1, cells.Y-2)
		str, err := blocks.Render(buf, cells)
		if err != nil {
			return err
		}
		st := conv.Settings()
		fmt.Fprintln(out, str)
		fmt.Fprintf(out, "%dx%d %s %s\n", st.Width, st.Height, st.Filter, conv.Format())
		return nil
	}
}
