package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientRGB(rows, cols int, seed byte) *Image {
	im := NewRGB(rows, cols)
	for i := range im.Pix {
		im.Pix[i] = byte(i)*3 + seed
	}
	return im
}

func TestAlphaBlendFullMaskKeepsFirstSource(t *testing.T) {
	a := gradientRGB(4, 6, 11)
	b := gradientRGB(4, 6, 97)
	mask := NewMask(4, 6)
	mask.Fill(255)

	out, err := AlphaBlend(a, b, mask)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, out.Pix)
}

func TestAlphaBlendZeroMaskKeepsSecondSource(t *testing.T) {
	a := gradientRGB(4, 6, 11)
	b := gradientRGB(4, 6, 97)
	mask := NewMask(4, 6)

	out, err := AlphaBlend(a, b, mask)
	require.NoError(t, err)
	assert.Equal(t, b.Pix, out.Pix)
}

func TestAlphaBlendHalfMaskLandsBetween(t *testing.T) {
	// two flat images 40 apart should blend to roughly the midpoint,
	// off by at most one from integer truncation
	a := NewRGB(3, 4)
	a.Fill(100)
	b := NewRGB(3, 4)
	b.Fill(140)
	mask := NewMask(3, 4)
	mask.Fill(128)

	out, err := AlphaBlend(a, b, mask)
	require.NoError(t, err)
	for i, v := range out.Pix {
		assert.InDelta(t, 120, int(v), 1, "pixel byte %d", i)
	}
}

func TestAlphaBlendDoesNotTouchInputs(t *testing.T) {
	a := gradientRGB(2, 2, 1)
	b := gradientRGB(2, 2, 2)
	mask := NewMask(2, 2)
	mask.Fill(77)
	aCopy := append([]byte(nil), a.Pix...)
	bCopy := append([]byte(nil), b.Pix...)

	_, err := AlphaBlend(a, b, mask)
	require.NoError(t, err)
	assert.Equal(t, aCopy, a.Pix)
	assert.Equal(t, bCopy, b.Pix)
}

func TestAlphaBlendRejectsBrokenCallers(t *testing.T) {
	good := NewRGB(4, 4)
	goodMask := NewMask(4, 4)

	testCases := []struct {
		name string
		a    *Image
		b    *Image
		mask *Image
	}{
		{"size mismatch between sources", NewRGB(4, 4), NewRGB(4, 6), goodMask},
		{"mask size mismatch", good, NewRGB(4, 4), NewMask(2, 2)},
		{"mask as source", good, &Image{Rows: 4, Cols: 4, Channels: 1, Pix: make([]byte, 16)}, goodMask},
		{"rgb as mask", good, NewRGB(4, 4), &Image{Rows: 4, Cols: 4, Channels: 3, Pix: make([]byte, 48)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := AlphaBlend(tc.a, tc.b, tc.mask)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, out, "no partial output on a contract breach")
		})
	}
}
