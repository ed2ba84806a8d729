// Package fourcc maps short codec names to the packed 32-bit tags video
// encoders expect.
package fourcc

import "strconv"

// Resolve turns a codec string into its packed fourcc value.
//
// Codes of 1-4 characters are upper-cased, right-padded with spaces to four
// bytes and packed with the first character in the least significant byte,
// which is the order ffmpeg and V4L2 agree on. An 8-character input is taken
// as a hex literal for callers that already hold the byte-swapped value
// (e.g. "4d4a5047" for the reading-order bytes of "MJPG"). Anything else,
// including the empty string, resolves to 0 meaning "no codec".
func Resolve(code string) uint32 {
	switch n := len(code); {
	case n == 0:
		return 0
	case n <= 4:
		var packed uint32
		for i := 0; i < 4; i++ {
			b := byte(' ')
			if i < n {
				b = upper(code[i])
			}
			packed |= uint32(b) << (8 * i)
		}
		return packed
	case n == 8:
		v, err := strconv.ParseUint(code, 16, 32)
		if err != nil {
			return 0
		}
		return uint32(v)
	default:
		return 0
	}
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
