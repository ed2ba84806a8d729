package frame

import "fmt"

// BT.601 RGB->YUV coefficients in 14-bit fixed point, same rounding as the
// usual broadcast conversion: Y = 0.299R + 0.587G + 0.114B,
// U = 0.564(B-Y) + 128, V = 0.713(R-Y) + 128.
const (
	yuvShift = 14
	yuvHalf  = 1 << (yuvShift - 1)

	r2y = 4899  // 0.299 << 14
	g2y = 9617  // 0.587 << 14
	b2y = 1868  // 0.114 << 14
	b2u = 9241  // 0.564 << 14
	r2v = 11682 // 0.713 << 14
)

// RGBToYUYV converts a 3-channel RGB image to packed YUYV 4:2:2 of the same
// Rows x Cols, two bytes per pixel. Each horizontal pixel pair keeps both
// luma samples and shares one chroma pair, averaged with truncating integer
// division. The byte order per pair is Y0, V, Y1, U - downstream consumers
// depend on exactly this layout.
//
// The input is never mutated; the output is freshly allocated. A source
// that is not 3-channel, or whose width is odd (the last column would have
// no pairing partner), returns an error wrapping ErrFormat.
func RGBToYUYV(src *Image) (*Image, error) {
	if src.Channels != 3 {
		return nil, fmt.Errorf("rgb to yuyv: source must be 3-channel, got %s: %w",
			src.describe(), ErrFormat)
	}
	if src.Cols%2 != 0 {
		return nil, fmt.Errorf("rgb to yuyv: odd width %d has no chroma partner: %w",
			src.Cols, ErrFormat)
	}

	out := NewYUYV(src.Rows, src.Cols)
	npix := src.Rows * src.Cols
	for pix := 0; pix < npix; pix += 2 {
		y0, u0, v0 := rgbToYUV(src.Pix[pix*3+0], src.Pix[pix*3+1], src.Pix[pix*3+2])
		y1, u1, v1 := rgbToYUV(src.Pix[pix*3+3], src.Pix[pix*3+4], src.Pix[pix*3+5])

		out.Pix[2*pix+0] = y0
		out.Pix[2*pix+1] = byte((int(v0) + int(v1)) / 2)
		out.Pix[2*pix+2] = y1
		out.Pix[2*pix+3] = byte((int(u0) + int(u1)) / 2)
	}
	return out, nil
}

func rgbToYUV(r, g, b byte) (y, u, v byte) {
	ri, gi, bi := int(r), int(g), int(b)
	yi := (ri*r2y + gi*g2y + bi*b2y + yuvHalf) >> yuvShift
	ui := ((bi-yi)*b2u+yuvHalf)>>yuvShift + 128
	vi := ((ri-yi)*r2v+yuvHalf)>>yuvShift + 128
	return clampByte(yi), clampByte(ui), clampByte(vi)
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
