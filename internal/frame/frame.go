// Package frame holds the 8-bit image buffers passed around the compositing
// pipeline and the pixel operations that run on them every frame.
package frame

import (
	"errors"
	"fmt"
)

// ErrFormat is wrapped by every precondition failure in this package.
// Hitting it means the calling code handed over buffers that break the
// pipeline contract, not that external data was bad.
var ErrFormat = errors.New("unexpected frame format")

// Image is a row-major grid of 8-bit samples. Three layouts are used:
// 3-channel interleaved RGB, 1-channel mask and 2-byte-per-pixel packed
// YUYV. len(Pix) is always Rows*Cols*Channels.
type Image struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []byte
}

// NewRGB allocates a zeroed 3-channel interleaved image.
func NewRGB(rows, cols int) *Image {
	return &Image{Rows: rows, Cols: cols, Channels: 3, Pix: make([]byte, rows*cols*3)}
}

// NewMask allocates a zeroed single-channel image.
func NewMask(rows, cols int) *Image {
	return &Image{Rows: rows, Cols: cols, Channels: 1, Pix: make([]byte, rows*cols)}
}

// NewYUYV allocates a zeroed packed 4:2:2 image, two bytes per pixel.
func NewYUYV(rows, cols int) *Image {
	return &Image{Rows: rows, Cols: cols, Channels: 2, Pix: make([]byte, rows*cols*2)}
}

// Fill sets every sample of every channel to v. Handy for flat masks.
func (im *Image) Fill(v byte) {
	for i := range im.Pix {
		im.Pix[i] = v
	}
}

func (im *Image) describe() string {
	return fmt.Sprintf("%dx%dx%d", im.Rows, im.Cols, im.Channels)
}
