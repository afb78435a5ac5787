// The asciiart package implements the logic for turning an image into plain text ascii art.
// Every pixel is mapped onto one glyph of GrayScaleRamp by its luminance, one text row per pixel row.
// By default, the package decodes .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See DecodeFile() and Decode().
// To support other image formats, either flatten the image yourself with FromImage() or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// A typical pipeline is DecodeFile() -> Converter.Convert() -> ReportInfo() -> WriteGrid(OutputName(path), grid).
package asciiart
