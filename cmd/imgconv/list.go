package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgconv/convert"
)

func init() {
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(formatsCmd)
}

var filtersCmd = &cobra.Command{
	Use:   `filters`,
	Short: `list filters and the backends supporting them`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			fmt.Fprint(cmd.OutOrStdout(), filterMatrix())
			return nil
		})
	},
}

var formatsCmd = &cobra.Command{
	Use:   `formats`,
	Short: `list output formats`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			out := cmd.OutOrStdout()
			for _, f := range convert.Formats() {
				fmt.Fprintf(out, "%-5s %-10s %-12s max %d\n", f, strings.Join(f.Extensions(), `,`), f.MIME(), f.MaxDimension())
			}
			return nil
		})
	},
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	yesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(`2`))
	noStyle     = lipgloss.NewStyle().Faint(true)
)

// filterMatrix has one row per filter and one column per backend.
func filterMatrix() string {
	rszs := convert.Resizers()
	const firstCol = 12
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(pad(`filter`, firstCol)))
	widths := make([]int, len(rszs))
	for i, rsz := range rszs {
		widths[i] = max(len(rsz.Name()), 3) + 2
		sb.WriteString(headerStyle.Render(pad(rsz.Name(), widths[i])))
	}
	sb.WriteString("\n")
	for _, f := range convert.Filters() {
		sb.WriteString(pad(f.Name(), firstCol))
		for i, rsz := range rszs {
			if rsz.Supports(f) {
				sb.WriteString(yesStyle.Render(pad(`yes`, widths[i])))
			} else {
				sb.WriteString(noStyle.Render(pad(`-`, widths[i])))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + strconv.Itoa(len(rszs)) + " backends, default: " + convert.DefaultResizerName + "\n")
	return sb.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(` `, w-len(s))
}
