// Package encico writes Windows icons. By default one PNG compressed frame is
// written per size of a fixed ladder so the shell can pick a sharp frame
// for every display scale.
package encico

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/srlehn/imgconv/convert"
	"github.com/srlehn/imgconv/internal/errors"
)

func init() { convert.RegisterEncoder(&IcoEncoder{}) }

var _ convert.Encoder = (*IcoEncoder)(nil)

// FrameSizes are the lengths of the longer side of the written frames.
var FrameSizes = [...]int{16, 24, 32, 48, 64, 72, 96, 128, 256}

const (
	headerLen = 6
	entryLen  = 16
)

type IcoEncoder struct{}

func (e *IcoEncoder) Format() convert.Format { return convert.ICO }

func (e *IcoEncoder) Encode(w io.Writer, buf *convert.Buffer, opts *convert.EncodeOptions) error {
	if w == nil || buf == nil {
		return errors.NilParam()
	}
	if opts == nil {
		opts = convert.DefaultEncodeOptions()
	}
	if opts.ICOSingle {
		return encodeSingle(w, buf)
	}
	frames, err := Frames(buf, opts.Resizer)
	if err != nil {
		return err
	}
	return writeContainer(w, frames)
}

func encodeSingle(w io.Writer, buf *convert.Buffer) error {
	if sz := buf.Size(); sz.X > convert.ICO.MaxDimension() || sz.Y > convert.ICO.MaxDimension() {
		return errors.New(`icon frame larger than 256x256`)
	}
	if err := ico.Encode(w, buf.Image()); err != nil {
		return errors.New(err)
	}
	return nil
}

// FrameSize returns the frame size for the ladder entry side with the aspect
// ratio of src.
func FrameSize(src image.Point, side int) image.Point {
	var sz image.Point
	switch {
	case src.X > src.Y:
		sz = image.Pt(side, int(float64(side)*float64(src.Y)/float64(src.X)))
	case src.Y > src.X:
		sz = image.Pt(int(float64(side)*float64(src.X)/float64(src.Y)), side)
	default:
		sz = image.Pt(side, side)
	}
	return image.Pt(max(sz.X, 1), max(sz.Y, 1))
}

// FrameFilter is Mitchell for frames with more pixels than the source and
// Lanczos3 otherwise.
func FrameFilter(src, frame image.Point) convert.Filter {
	if frame.X*frame.Y > src.X*src.Y {
		return convert.Mitchell
	}
	return convert.Lanczos3
}

// Frames resamples buf to every size of the ladder.
func Frames(buf *convert.Buffer, rsz convert.Resizer) ([]*convert.Buffer, error) {
	frames := make([]*convert.Buffer, 0, len(FrameSizes))
	src := buf.Size()
	for _, side := range FrameSizes {
		sz := FrameSize(src, side)
		frame, err := convert.Resample(rsz, buf, sz, FrameFilter(src, sz))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// writeContainer lays out an ICONDIR with PNG payloads.
func writeContainer(w io.Writer, frames []*convert.Buffer) error {
	payloads := make([][]byte, len(frames))
	for i, frame := range frames {
		var b bytes.Buffer
		if err := png.Encode(&b, frame.Image()); err != nil {
			return errors.New(err)
		}
		payloads[i] = b.Bytes()
	}

	var out bytes.Buffer
	le := binary.LittleEndian
	out.Write(le.AppendUint16(nil, 0)) // reserved
	out.Write(le.AppendUint16(nil, 1)) // type: icon
	out.Write(le.AppendUint16(nil, uint16(len(frames))))
	offset := headerLen + entryLen*len(frames)
	for i, frame := range frames {
		out.WriteByte(dimByte(frame.Width))
		out.WriteByte(dimByte(frame.Height))
		out.WriteByte(0)                    // palette size
		out.WriteByte(0)                    // reserved
		out.Write(le.AppendUint16(nil, 1))  // color planes
		out.Write(le.AppendUint16(nil, 32)) // bits per pixel
		out.Write(le.AppendUint32(nil, uint32(len(payloads[i]))))
		out.Write(le.AppendUint32(nil, uint32(offset)))
		offset += len(payloads[i])
	}
	for _, p := range payloads {
		out.Write(p)
	}
	if _, err := out.WriteTo(w); err != nil {
		return errors.New(err)
	}
	return nil
}

// ICO uses 0 for 256px
func dimByte(v int) byte {
	if v >= 256 {
		return 0
	}
	return byte(v)
}
