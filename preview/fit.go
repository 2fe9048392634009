// Package preview shows conversion results in a terminal.
package preview

import (
	"image"
	"os"

	"github.com/containerd/console"
)

// Fit returns the largest size with the aspect ratio of size that fits
// into area. Both sides are at least 1.
func Fit(size, area image.Point) image.Point {
	if size.X < 1 || size.Y < 1 || area.X < 1 || area.Y < 1 {
		return image.Pt(max(area.X, 1), max(area.Y, 1))
	}
	// compare size.X/size.Y with area.X/area.Y without rounding
	if size.X*area.Y >= area.X*size.Y {
		return image.Pt(area.X, max(1, area.X*size.Y/size.X))
	}
	return image.Pt(max(1, area.Y*size.X/size.Y), area.Y)
}

// DefaultTerminalSize is used when the terminal can't be queried.
var DefaultTerminalSize = image.Pt(80, 24)

// TerminalSize returns the size of the controlling terminal in cells.
func TerminalSize() image.Point {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		c, err := console.ConsoleFromFile(f)
		if err != nil {
			continue
		}
		ws, err := c.Size()
		if err != nil || ws.Width == 0 || ws.Height == 0 {
			continue
		}
		return image.Pt(int(ws.Width), int(ws.Height))
	}
	return DefaultTerminalSize
}
