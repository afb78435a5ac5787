package asciiart

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	// GrayScaleRamp lists the glyphs used for the art, ordered from lightest to densest.
	GrayScaleRamp = " .:-=+*#%@"

	// DefaultMaxGridBytes is the largest ASCII grid a converter will allocate unless configured otherwise (1 GiB).
	DefaultMaxGridBytes = 1 << 30
)

var (
	// ErrDecode is returned when the input cannot be interpreted as an image.
	ErrDecode = errors.New("couldnt decode image")
	// ErrInvalidImage is returned when dimensions, channel count and pixel buffer do not agree.
	ErrInvalidImage = errors.New("invalid image")
	// ErrAllocation is returned when the ASCII grid buffer cannot be allocated.
	ErrAllocation = errors.New("couldnt allocate ASCII grid")
	// ErrOutput is returned when the ASCII grid cannot be persisted.
	ErrOutput = errors.New("couldnt write ASCII grid")
)

type Converter struct {
	// MaxGridBytes is the upper bound (inclusive) on the allocated grid size, terminator included. See WithMaxGridBytes()
	MaxGridBytes int

	// Logger receives debug diagnostics about each conversion. Defaults to a disabled logger.
	Logger zerolog.Logger
}

type AsciiOption func(*Converter)

/*
NewDefault initializes a converter with default parameters.

- MaxGridBytes: DefaultMaxGridBytes (1 GiB)
- Logger: zerolog.Nop()
*/
func NewDefault() *Converter {
	return &Converter{
		MaxGridBytes: DefaultMaxGridBytes,
		Logger:       zerolog.Nop(),
	}
}

// New initializes a converter with default parameters, then applies options
func New(opts ...AsciiOption) *Converter {
	c := NewDefault()

	for _, o := range opts {
		o(c)
	}

	return c
}

/*
Luminance returns the perceptual brightness (0-255) of an r, g, b triple using the 0.299/0.587/0.114 weighting. The weighted sum is truncated, never rounded.

The sum is computed in integer thousandths so that equal r, g, b always give back the same value.
*/
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// RampIndex maps a luminance value onto an index of GrayScaleRamp.
func RampIndex(lum uint8) int {
	return int(lum) * len(GrayScaleRamp) / 256
}

// Glyph returns the GrayScaleRamp character for a luminance value.
func Glyph(lum uint8) byte {
	return GrayScaleRamp[RampIndex(lum)]
}

/*
PixelLuminance returns the luminance of the pixel starting at offset in a flat, channel interleaved buffer.

With 3 or more channels the first three samples are read as r, g, b (any alpha is ignored). With fewer channels the first sample already is a gray value and is returned as is. The caller guarantees that the samples exist.
*/
func PixelLuminance(pix []uint8, offset, channels int) uint8 {
	if channels < 3 {
		return pix[offset]
	}

	return Luminance(pix[offset], pix[offset+1], pix[offset+2])
}

// PixelGlyph returns the GrayScaleRamp character for the pixel starting at offset. See PixelLuminance()
func PixelGlyph(pix []uint8, offset, channels int) byte {
	return Glyph(PixelLuminance(pix, offset, channels))
}

/*
Convert builds the ASCII grid for a decoded image, respecting MaxGridBytes.

When the logger has debug enabled, the luminance statistics of the image are logged as well (see ComputeStats()).
*/
func (c *Converter) Convert(img *DecodedImage) (*Grid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrInvalidImage)
	}

	start := time.Now()

	grid, err := buildGrid(img.Width, img.Height, img.Channels, img.Pix, c.MaxGridBytes)
	if err != nil {
		return nil, err
	}

	if e := c.Logger.Debug(); e.Enabled() {
		stats := ComputeStats(img)
		e.Int("width", grid.Width()).
			Int("height", grid.Height()).
			Int("channels", img.Channels).
			Int("allocated", grid.Size()).
			Float64("mean_luminance", stats.MeanLuminance).
			Float64("stddev_luminance", stats.StdDevLuminance).
			Ints("ramp_histogram", stats.RampHistogram[:]).
			Dur("took", time.Since(start)).
			Msg("built ASCII grid")
	}

	return grid, nil
}
