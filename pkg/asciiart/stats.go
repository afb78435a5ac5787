package asciiart

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// GridStats summarizes the luminance of an image as the converter sees it.
type GridStats struct {
	MeanLuminance   float64
	StdDevLuminance float64
	// RampHistogram counts how many pixels map onto each GrayScaleRamp glyph.
	RampHistogram [len(GrayScaleRamp)]int
}

/*
ComputeStats returns the luminance statistics of img. Images without pixels, or whose buffer is too short, give zero stats.
*/
func ComputeStats(img *DecodedImage) GridStats {
	var stats GridStats
	if img == nil || img.Width <= 0 || img.Height <= 0 || img.Channels < 1 {
		return stats
	}

	numPixels := img.Width * img.Height
	if numPixels > len(img.Pix)/img.Channels {
		return stats
	}

	lums := make([]float64, numPixels)
	for p := range lums {
		lums[p] = float64(PixelLuminance(img.Pix, p*img.Channels, img.Channels))
	}

	if numPixels == 1 {
		stats.MeanLuminance = lums[0]
	} else {
		stats.MeanLuminance, stats.StdDevLuminance = stat.MeanStdDev(lums, nil)
	}

	// Bucket i covers [i*256/n, (i+1)*256/n), the same split RampIndex() uses.
	dividers := make([]float64, len(GrayScaleRamp)+1)
	for i := range dividers {
		dividers[i] = float64(i*256) / float64(len(GrayScaleRamp))
	}

	slices.Sort(lums)
	for i, n := range stat.Histogram(nil, dividers, lums, nil) {
		stats.RampHistogram[i] = int(n)
	}

	return stats
}
