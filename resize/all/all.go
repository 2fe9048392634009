// Package all registers every resize backend.
package all

import (
	_ "github.com/srlehn/imgconv/resize/bild"
	_ "github.com/srlehn/imgconv/resize/caire"
	_ "github.com/srlehn/imgconv/resize/gift"
	_ "github.com/srlehn/imgconv/resize/imaging"
	_ "github.com/srlehn/imgconv/resize/nfnt"
	_ "github.com/srlehn/imgconv/resize/rdefault"
	_ "github.com/srlehn/imgconv/resize/rez"
	_ "github.com/srlehn/imgconv/resize/xdraw"
)
