package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// chdir stands in for testing.T.Chdir (Go 1.24+): it changes the working
// directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func blackWhite() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 255, 255, 255})
	return img
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"asciiart"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writePNG(t, "pixels.png", blackWhite())

	code, stdout, stderr := run("pixels.png")
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, "pixels.png:\n\twidth: 2\n\theight: 1\n4 bytes for ASCII image (allocated)\n", stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(filepath.Join(dir, "pixels.txt"))
	require.NoError(t, err)
	assert.Equal(t, " @\n", string(got))
}

func TestRunNamesOutputFromBaseName(t *testing.T) {
	src := t.TempDir()
	chdir(t, t.TempDir())
	input := filepath.Join(src, "a.b.c.png")
	writePNG(t, input, blackWhite())

	code, _, stderr := run(input)
	require.Equal(t, 0, code, stderr)

	_, err := os.Stat("a.txt")
	assert.NoError(t, err)
}

func TestRunIdempotent(t *testing.T) {
	chdir(t, t.TempDir())
	writePNG(t, "pixels.png", blackWhite())

	code, _, _ := run("pixels.png")
	require.Equal(t, 0, code)
	first, err := os.ReadFile("pixels.txt")
	require.NoError(t, err)

	code, _, _ = run("pixels.png")
	require.Equal(t, 0, code)
	second, err := os.ReadFile("pixels.txt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunOutDir(t *testing.T) {
	chdir(t, t.TempDir())
	out := t.TempDir()
	writePNG(t, "pixels.png", blackWhite())

	code, _, stderr := run("-o", out, "pixels.png")
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(filepath.Join(out, "pixels.txt"))
	require.NoError(t, err)
	assert.Equal(t, " @\n", string(got))
}

func TestRunUsage(t *testing.T) {
	code, stdout, _ := run()

	assert.Equal(t, 1, code)
	assert.Equal(t, "usage: asciiart <image>\n", stdout)
}

func TestRunUnknownFlag(t *testing.T) {
	code, stdout, _ := run("--nope", "pixels.png")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "usage: asciiart <image>")
}

func TestRunDecodeFailure(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("broken.png", []byte("not really a png"), 0o644))

	code, stdout, stderr := run("broken.png")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "couldnt load image broken.png; error: ")
	assert.NoFileExists(t, "broken.txt")
}

func TestRunMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	code, _, stderr := run("missing.png")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.png")
}

func TestRunAllocationFailure(t *testing.T) {
	chdir(t, t.TempDir())
	writePNG(t, "pixels.png", blackWhite())

	code, stdout, stderr := run("--max-grid-bytes", "3", "pixels.png")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "couldnt generate ASCII image/art from the image.\n", stderr)
	assert.NoFileExists(t, "pixels.txt")
}

func TestRunOutputFailure(t *testing.T) {
	chdir(t, t.TempDir())
	writePNG(t, "pixels.png", blackWhite())

	code, _, stderr := run("-o", filepath.Join("does", "not", "exist"), "pixels.png")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "couldnt write ASCII image to "+filepath.Join("does", "not", "exist", "pixels.txt"))
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	chdir(t, t.TempDir())
	writePNG(t, "pixels.png", blackWhite())

	code, stdout, stderr := run("-v", "pixels.png")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "4 bytes for ASCII image (allocated)")
	assert.Contains(t, stderr, "decoded image")
	assert.Contains(t, stderr, "built ASCII grid")
	assert.Contains(t, stderr, "wrote ASCII image")
}

func TestNewLoggerQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Error().Msg("hidden too")

	assert.Empty(t, buf.String())
}
