package bild_test

import (
	"testing"

	"github.com/srlehn/imgconv/convert"
	_ "github.com/srlehn/imgconv/resize/bild"
	"github.com/srlehn/imgconv/resize/internal/resizetest"
)

func TestResizer(t *testing.T) {
	resizetest.Run(t, convert.ResizerByName(`bild`), `bild`, convert.Filters()...)
}
