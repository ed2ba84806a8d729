// All frame file I/O lives here: PNG in/out, raw YUYV out, background
// loading with rescale.
package storage

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"

	"github.com/floe/go-backscrub/internal/frame"
)

// LoadRGB decodes a PNG or JPEG file into a 3-channel frame buffer.
func LoadRGB(filename string) (*frame.Image, error) {
	img, err := readImage(filename)
	if err != nil {
		return nil, err
	}
	return toRGB(img), nil
}

// LoadMask decodes an image file into a single-channel mask. Color input
// is flattened to luma.
func LoadMask(filename string) (*frame.Image, error) {
	img, err := readImage(filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	out := frame.NewMask(bounds.Dy(), bounds.Dx())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.Pix[i] = g.Y
			i++
		}
	}
	return out, nil
}

// LoadBackground decodes an image and rescales it to rows x cols so it can
// be blended against capture-sized frames.
func LoadBackground(filename string, rows, cols int) (*frame.Image, error) {
	img, err := readImage(filename)
	if err != nil {
		return nil, err
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return toRGB(scaled), nil
}

// SaveRGB writes a 3-channel frame buffer as a PNG file, creating parent
// directories as needed.
func SaveRGB(filename string, im *frame.Image) error {
	if im.Channels != 3 {
		return fmt.Errorf("Cannot save %d-channel image as RGB", im.Channels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, im.Cols, im.Rows))
	for pix := 0; pix < im.Rows*im.Cols; pix++ {
		img.Pix[pix*4+0] = im.Pix[pix*3+0]
		img.Pix[pix*4+1] = im.Pix[pix*3+1]
		img.Pix[pix*4+2] = im.Pix[pix*3+2]
		img.Pix[pix*4+3] = 255
	}

	err := os.MkdirAll(filepath.Dir(filename), os.ModePerm)
	if err != nil {
		return fmt.Errorf("Cannot create dir for %s: %s", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Cannot create file: %s", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

// WriteYUYV dumps a packed 4:2:2 buffer as raw bytes, the format a V4L2
// loopback consumer reads directly.
func WriteYUYV(filename string, im *frame.Image) error {
	if im.Channels != 2 {
		return fmt.Errorf("Cannot write %d-channel image as YUYV", im.Channels)
	}
	err := os.MkdirAll(filepath.Dir(filename), os.ModePerm)
	if err != nil {
		return fmt.Errorf("Cannot create dir for %s: %s", filename, err)
	}
	return os.WriteFile(filename, im.Pix, 0o644)
}

// ScanFrames lists image files in a directory in name order.
func ScanFrames(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(files))
	for _, file := range files {
		name := file.Name()
		if strings.HasSuffix(name, ".png") || strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".jpeg") {
			list = append(list, filepath.Join(dir, name))
		}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("No frames found in %s", dir)
	}
	sort.Strings(list)
	return list, nil
}

func readImage(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Cannot decode %s: %s", filename, err)
	}
	return img, nil
}

func toRGB(img image.Image) *frame.Image {
	bounds := img.Bounds()
	out := frame.NewRGB(bounds.Dy(), bounds.Dx())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.Pix[i+0] = byte(r >> 8)
			out.Pix[i+1] = byte(g >> 8)
			out.Pix[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return out
}
