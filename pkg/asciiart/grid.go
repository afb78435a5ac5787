package asciiart

import (
	"fmt"
	"math"
)

/*
Grid is the ASCII art of one image. The backing buffer holds height rows of width glyphs, each row followed by a '\n', and one trailing 0 terminator:

	len(buf) = (width + 1) * height + 1

Treat a Grid as immutable once built.
*/
type Grid struct {
	buf    []byte
	width  int
	height int
}

// Width returns the number of glyphs per row
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Size returns the allocated size of the grid in bytes, including the terminator.
func (g *Grid) Size() int {
	return len(g.buf)
}

// Bytes returns the text of the grid without the terminator. The slice aliases the grid, do not modify it.
func (g *Grid) Bytes() []byte {
	return g.buf[:len(g.buf)-1]
}

func (g *Grid) String() string {
	return string(g.Bytes())
}

// gridSize returns (width + 1) * height + 1, or false if it does not fit in an int.
func gridSize(width, height int) (int, bool) {
	if width == math.MaxInt {
		return 0, false
	}

	rowLen := width + 1
	if height > 0 && rowLen > (math.MaxInt-1)/height {
		return 0, false
	}

	return rowLen*height + 1, true
}

/*
BuildGrid converts a flat, row-major pixel buffer into a Grid using the default MaxGridBytes. The pixel at row i, column j starts at channels * (i * width + j).

A height of 0 is valid and yields a grid that only holds the terminator. A width of 0 yields height empty lines.
*/
func BuildGrid(width, height, channels int, pix []uint8) (*Grid, error) {
	return buildGrid(width, height, channels, pix, DefaultMaxGridBytes)
}

func buildGrid(width, height, channels int, pix []uint8, maxBytes int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidImage, width, height)
	}

	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, channels)
	}

	size, ok := gridSize(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}

	if size > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", ErrAllocation, size, maxBytes)
	}

	// size fits, so width * height does too
	if numPixels := width * height; numPixels > len(pix)/channels {
		return nil, fmt.Errorf("%w: %d samples for %d pixels with %d channels", ErrInvalidImage, len(pix), numPixels, channels)
	}

	buf := make([]byte, size)
	rowLen := width + 1

	for i := 0; i < height; i++ {
		row := buf[i*rowLen : (i+1)*rowLen]
		for j := 0; j < width; j++ {
			row[j] = PixelGlyph(pix, channels*(i*width+j), channels)
		}
		row[width] = '\n'
	}

	buf[size-1] = 0

	return &Grid{
		buf:    buf,
		width:  width,
		height: height,
	}, nil
}
