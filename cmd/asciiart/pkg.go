// This package implements the command line tool that uses the API.
// It converts one image on the filesystem into a .txt file of ascii art in the working directory,
// named after the image (photo.png -> photo.txt).
//
// By default, the converter is only compatible with .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp file formats
// (See github.com/nebbyJammin/imgascii/pkg/asciiart).
package main
