package preview

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

const (
	sheetColumns = 4
	sheetGap     = 8
	labelHeight  = 20
)

// ContactSheet resamples buf with every filter to fit into cell and lays the
// results out in a labelled grid.
func ContactSheet(buf *convert.Buffer, cell image.Point, rsz convert.Resizer) (image.Image, error) {
	if buf == nil {
		return nil, errors.NilParam()
	}
	if cell.X < 1 || cell.Y < 1 {
		return nil, errors.New(`invalid cell size`)
	}
	filters := convert.Filters()
	rows := (len(filters) + sheetColumns - 1) / sheetColumns
	tileW, tileH := cell.X+sheetGap, cell.Y+labelHeight+sheetGap
	dc := gg.NewContext(sheetColumns*tileW+sheetGap, rows*tileH+sheetGap)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	goFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.New(err)
	}
	face := truetype.NewFace(goFont, &truetype.Options{Size: 12})
	defer face.Close()
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)

	sz := Fit(buf.Size(), cell)
	for i, f := range filters {
		out, err := convert.Resample(rsz, buf, sz, f)
		if err != nil {
			return nil, err
		}
		x := sheetGap + (i%sheetColumns)*tileW
		y := sheetGap + (i/sheetColumns)*tileH
		// center the image in its cell
		dc.DrawImage(out.Image(), x+(cell.X-sz.X)/2, y+(cell.Y-sz.Y)/2)
		dc.DrawStringAnchored(f.String(), float64(x+cell.X/2), float64(y+cell.Y+labelHeight/2), 0.5, 0.5)
	}
	return dc.Image(), nil
}
