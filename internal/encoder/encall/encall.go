// Package encall registers the encoders of all output formats.
package encall

import (
	_ "github.com/srlehn/imgconv/internal/encoder/encbmp"
	_ "github.com/srlehn/imgconv/internal/encoder/encico"
	_ "github.com/srlehn/imgconv/internal/encoder/encjpeg"
	_ "github.com/srlehn/imgconv/internal/encoder/encpng"
	_ "github.com/srlehn/imgconv/internal/encoder/encwebp"
)
