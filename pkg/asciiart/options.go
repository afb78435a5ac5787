package asciiart

import "github.com/rs/zerolog"

/*
WithMaxGridBytes sets the largest ASCII grid (in bytes, terminator included) the converter is allowed to allocate. Any image that would need a bigger grid fails with ErrAllocation instead.

A value <= 0 restores DefaultMaxGridBytes.
*/
func WithMaxGridBytes(maxBytes int) AsciiOption {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxGridBytes
	}

	return func(c *Converter) {
		c.MaxGridBytes = maxBytes
	}
}

// WithLogger sets the logger used for debug diagnostics. Pass zerolog.Nop() to silence it.
func WithLogger(logger zerolog.Logger) AsciiOption {
	return func(c *Converter) {
		c.Logger = logger
	}
}
