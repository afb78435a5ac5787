package asciiart

import (
	"fmt"
	"io"
)

const (
	kibibyte = 1024
	mebibyte = 1024 * 1024
)

// FormatSize renders a byte count in bytes, KiB or MiB, whichever is the largest unit that fits.
func FormatSize(size int) string {
	switch {
	case size >= mebibyte:
		return fmt.Sprintf("%.2f MiB", float64(size)/mebibyte)
	case size >= kibibyte:
		return fmt.Sprintf("%.2f KiB", float64(size)/kibibyte)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}

/*
ReportInfo writes a human readable summary of a conversion to w:

	photo.png:
		width: 640
		height: 480
	300.47 KiB for ASCII image (allocated)
*/
func ReportInfo(w io.Writer, name string, width, height, size int) {
	fmt.Fprintf(w, "%s:\n\twidth: %d\n\theight: %d\n", name, width, height)
	fmt.Fprintf(w, "%s for ASCII image (allocated)\n", FormatSize(size))
}
