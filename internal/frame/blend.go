package frame

import "fmt"

// AlphaBlend mixes two RGB images under a single-channel mask: a mask byte
// of 255 keeps a, 0 keeps b, anything between weighs them linearly with
// truncating integer arithmetic, `(a*w + b*(255-w)) / 255` per channel.
//
// All three buffers must share the same Rows x Cols; a and b must be
// 3-channel and mask 1-channel. A violation returns an error wrapping
// ErrFormat and no output at all, since it means the caller is broken.
func AlphaBlend(a, b, mask *Image) (*Image, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols || a.Rows != mask.Rows || a.Cols != mask.Cols {
		return nil, fmt.Errorf("alpha blend: size mismatch a=%s b=%s mask=%s: %w",
			a.describe(), b.describe(), mask.describe(), ErrFormat)
	}
	if a.Channels != 3 || b.Channels != 3 {
		return nil, fmt.Errorf("alpha blend: sources must be 3-channel, got a=%s b=%s: %w",
			a.describe(), b.describe(), ErrFormat)
	}
	if mask.Channels != 1 {
		return nil, fmt.Errorf("alpha blend: mask must be 1-channel, got %s: %w",
			mask.describe(), ErrFormat)
	}

	out := NewRGB(a.Rows, a.Cols)
	npix := a.Rows * a.Cols
	for pix := 0; pix < npix; pix++ {
		aw := int(mask.Pix[pix])
		bw := 255 - aw

		p := pix * 3
		out.Pix[p+0] = byte((int(a.Pix[p+0])*aw + int(b.Pix[p+0])*bw) / 255)
		out.Pix[p+1] = byte((int(a.Pix[p+1])*aw + int(b.Pix[p+1])*bw) / 255)
		out.Pix[p+2] = byte((int(a.Pix[p+2])*aw + int(b.Pix[p+2])*bw) / 255)
	}
	return out, nil
}
