package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floe/go-backscrub/internal/config"
	"github.com/floe/go-backscrub/internal/frame"
	"github.com/floe/go-backscrub/internal/storage"
)

func writeFlatRGB(t *testing.T, path string, rows, cols int, v byte) {
	t.Helper()
	im := frame.NewRGB(rows, cols)
	im.Fill(v)
	require.NoError(t, storage.SaveRGB(path, im))
}

func writeFlatMask(t *testing.T, path string, rows, cols int, v byte) {
	t.Helper()
	// masks are saved as gray RGB PNGs and flattened on load
	writeFlatRGB(t, path, rows, cols, v)
}

func TestCompositeFullMaskKeepsFrames(t *testing.T) {
	framesDir := t.TempDir()
	masksDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	assets := t.TempDir()

	const nframes = 3
	for i := 0; i < nframes; i++ {
		writeFlatRGB(t, filepath.Join(framesDir, fmt.Sprintf("f_%02d.png", i)), 4, 6, byte(40+i*10))
		writeFlatMask(t, filepath.Join(masksDir, fmt.Sprintf("m_%02d.png", i)), 4, 6, 255)
	}
	writeFlatRGB(t, filepath.Join(assets, config.CategoryBackgrounds, "bg.png"), 10, 10, 222)
	t.Setenv(config.EnvSearchPath, assets)

	require.NoError(t, Composite(context.Background(), framesDir, masksDir, "bg.png", outDir))

	for i := 0; i < nframes; i++ {
		got, err := storage.LoadRGB(filepath.Join(outDir, fmt.Sprintf("out_%08d.png", i)))
		require.NoError(t, err)
		want := frame.NewRGB(4, 6)
		want.Fill(byte(40 + i*10))
		assert.Equal(t, want.Pix, got.Pix, "mask 255 keeps the frame, frame %d", i)
	}
}

func TestCompositeZeroMaskKeepsBackground(t *testing.T) {
	framesDir := t.TempDir()
	masksDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	assets := t.TempDir()

	writeFlatRGB(t, filepath.Join(framesDir, "f.png"), 4, 6, 40)
	writeFlatMask(t, filepath.Join(masksDir, "m.png"), 4, 6, 0)
	writeFlatRGB(t, filepath.Join(assets, config.CategoryBackgrounds, "bg.png"), 10, 10, 222)
	t.Setenv(config.EnvSearchPath, assets)

	require.NoError(t, Composite(context.Background(), framesDir, masksDir, "bg.png", outDir))

	got, err := storage.LoadRGB(filepath.Join(outDir, "out_00000000.png"))
	require.NoError(t, err)
	for _, v := range got.Pix {
		assert.EqualValues(t, 222, v, "mask 0 keeps the scaled background")
	}
}

func TestCompositeCountMismatch(t *testing.T) {
	framesDir := t.TempDir()
	masksDir := t.TempDir()

	writeFlatRGB(t, filepath.Join(framesDir, "a.png"), 4, 6, 40)
	writeFlatRGB(t, filepath.Join(framesDir, "b.png"), 4, 6, 40)
	writeFlatMask(t, filepath.Join(masksDir, "a.png"), 4, 6, 255)

	err := Composite(context.Background(), framesDir, masksDir, "bg.png", t.TempDir())
	assert.Error(t, err)
}

func TestCompositeMissingBackground(t *testing.T) {
	framesDir := t.TempDir()
	masksDir := t.TempDir()
	writeFlatRGB(t, filepath.Join(framesDir, "a.png"), 4, 6, 40)
	writeFlatMask(t, filepath.Join(masksDir, "a.png"), 4, 6, 255)
	t.Setenv(config.EnvSearchPath, t.TempDir())
	t.Setenv(config.EnvDataHome, t.TempDir())
	t.Setenv(config.EnvHome, t.TempDir())

	err := Composite(context.Background(), framesDir, masksDir, "no-such-bg.png", t.TempDir())
	assert.Error(t, err)
}

func TestConvertYUYV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.yuyv")

	writeFlatRGB(t, input, 3, 4, 77)

	require.NoError(t, ConvertYUYV(input, output))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, raw, 3*4*2)
	for i := 0; i < len(raw); i += 4 {
		assert.EqualValues(t, 77, raw[i+0], "Y0")
		assert.EqualValues(t, 128, raw[i+1], "neutral V for gray input")
		assert.EqualValues(t, 77, raw[i+2], "Y1")
		assert.EqualValues(t, 128, raw[i+3], "neutral U for gray input")
	}
}

func TestResolveAssetReadsEnvironmentOnce(t *testing.T) {
	assets := t.TempDir()
	writeFlatRGB(t, filepath.Join(assets, config.CategoryModels, "seg.tflite"), 2, 2, 1)
	t.Setenv(config.EnvSearchPath, assets)

	got, ok := ResolveAsset("seg.tflite", config.CategoryModels)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(assets, config.CategoryModels, "seg.tflite"), got)
}
