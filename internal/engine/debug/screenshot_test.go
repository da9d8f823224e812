package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// twoRows returns a 1x2 bottom-up RGBA buffer: red bottom row, blue top row.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "laneracer", FormatBMP)
	sc.now = fixedClock

	assert.Equal(t, filepath.Join("shots", "laneracer_2024-05-01_12-30-45.000.bmp"), sc.GenerateFilename())
}

func TestSetOutputDir(t *testing.T) {
	sc := NewScreenshotCapture("shots", "laneracer", FormatPNG)
	sc.now = fixedClock

	sc.SetOutputDir("")
	assert.Equal(t, "laneracer_2024-05-01_12-30-45.000.png", sc.GenerateFilename())

	sc.SetOutputDir(filepath.Join("a", "b"))
	assert.Equal(t, filepath.Join("a", "b", "laneracer_2024-05-01_12-30-45.000.png"), sc.GenerateFilename())
}

func TestUnknownFormatFallsBackToPNG(t *testing.T) {
	sc := NewScreenshotCapture("", "laneracer", "gif")
	assert.True(t, strings.HasSuffix(sc.GenerateFilename(), ".png"))
}

func TestCaptureFromPixelsFlipsPNG(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "laneracer", FormatPNG)

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1, 2), img.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(img.At(0, 0)), color.RGBA{0, 0, 255, 255})
	assert.Equal(t, color.RGBAModel.Convert(img.At(0, 1)), color.RGBA{255, 0, 0, 255})
}

func TestCaptureFromPixelsBMP(t *testing.T) {
	sc := NewScreenshotCapture(filepath.Join(t.TempDir(), "nested"), "laneracer", FormatBMP)

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, ".bmp", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "laneracer", FormatPNG)

	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}
