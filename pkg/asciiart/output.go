package asciiart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const outputExt = ".txt"

/*
OutputName derives the text file name for an input image: the base name up to its first '.', plus ".txt".

	photo.jpeg     -> photo.txt
	/tmp/a.b.c.png -> a.txt
	README         -> README.txt
*/
func OutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	return base + outputExt
}

// WriteGrid writes the grid text (without terminator) to path, truncating any existing file.
func WriteGrid(path string, grid *Grid) (err error) {
	if grid == nil {
		return fmt.Errorf("%w: no grid", ErrOutput)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, cerr)
		}
	}()

	if _, err := f.Write(grid.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	return nil
}
