package asciiart

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
DecodedImage is a decoded image flattened into a row-major pixel buffer. Each pixel occupies Channels consecutive samples:

  - 1: gray
  - 3: red, green, blue
  - 4: red, green, blue, alpha (non-premultiplied)

len(Pix) is always Width * Height * Channels.
*/
type DecodedImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
	// Format is the name of the format the image was decoded from (e.g. "png"). Empty for FromImage().
	Format string
}

// Release drops the pixel buffer. It is safe to call more than once.
func (d *DecodedImage) Release() {
	if d == nil {
		return
	}

	d.Pix = nil
}

/*
DecodeFile opens and decodes the image at path. Supported formats are png, jpeg, gif, bmp, tiff and webp.

Additional formats can be supported by registering their decoder with the image package:

	import _ "mycustomdecoder/mycustomformat"
*/
func DecodeFile(path string) (*DecodedImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads an image from r and flattens it. See DecodeFile()
func Decode(r io.Reader) (*DecodedImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	d := FromImage(img)
	d.Format = format

	return d, nil
}

/*
FromImage flattens any image.Image into a DecodedImage. Gray images keep a single channel, opaque images get 3 channels and everything else gets 4.
*/
func FromImage(img image.Image) *DecodedImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pix := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*width:(y+1)*width], src.Pix[start:start+width])
		}

		return &DecodedImage{Width: width, Height: height, Channels: 1, Pix: pix}
	case *image.Gray16:
		pix := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				pix[y*width+x] = c.Y
			}
		}

		return &DecodedImage{Width: width, Height: height, Channels: 1, Pix: pix}
	}

	channels := 4
	if isOpaque(img) {
		channels = 3
	}

	pix := make([]uint8, width*height*channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)

			offset := channels * (y*width + x)
			pix[offset] = c.R
			pix[offset+1] = c.G
			pix[offset+2] = c.B
			if channels == 4 {
				pix[offset+3] = c.A
			}
		}
	}

	return &DecodedImage{Width: width, Height: height, Channels: channels, Pix: pix}
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}

	return true
}
