package utils

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/nebbyJammin/imgascii/pkg/asciiart"
)

const (
	defaultProgram = "asciiart"

	outDirUsage       = "Directory the .txt file is written to."
	verboseUsage      = "Enables debug logging to stderr."
	maxGridBytesUsage = "Largest ASCII grid (in bytes) that may be allocated. Bigger images fail to convert."
)

type config struct {
	outDir       string
	verbose      bool
	maxGridBytes int
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <image>\n", program)
}

// NewLogger returns a console logger on w at debug level, or a disabled logger if verbose is false.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

/*
Run converts the image named by the first positional argument of args (args[0] is the program name) into a .txt file and returns the process exit code.

The info report and usage go to stdout. Errors and debug logs go to stderr.
*/
func Run(args []string, stdout, stderr io.Writer) int {
	program := defaultProgram
	if len(args) > 0 {
		program = filepath.Base(args[0])
		args = args[1:]
	}

	var cfg config

	flags := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.outDir, "out-dir", "o", ".", outDirUsage)
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, verboseUsage)
	flags.IntVar(&cfg.maxGridBytes, "max-grid-bytes", asciiart.DefaultMaxGridBytes, maxGridBytesUsage)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		printUsage(stdout, program)
		return 1
	}

	if flags.NArg() < 1 {
		printUsage(stdout, program)
		return 1
	}

	path := flags.Arg(0)
	logger := NewLogger(stderr, cfg.verbose)

	asciiconv := asciiart.New(
		asciiart.WithMaxGridBytes(cfg.maxGridBytes),
		asciiart.WithLogger(logger),
	)

	start := time.Now()

	img, err := asciiart.DecodeFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "couldnt load image %s; error: %s\n", path, err)
		return 1
	}
	defer img.Release()

	logger.Debug().
		Str("path", path).
		Str("format", img.Format).
		Int("channels", img.Channels).
		Dur("took", time.Since(start)).
		Msg("decoded image")

	grid, err := asciiconv.Convert(img)
	if err != nil {
		logger.Debug().Err(err).Msg("grid build failed")
		fmt.Fprintln(stderr, "couldnt generate ASCII image/art from the image.")
		return 1
	}

	asciiart.ReportInfo(stdout, path, grid.Width(), grid.Height(), grid.Size())

	output := filepath.Join(cfg.outDir, asciiart.OutputName(path))
	if err := asciiart.WriteGrid(output, grid); err != nil {
		fmt.Fprintf(stderr, "couldnt write ASCII image to %s; error: %s\n", output, err)
		return 1
	}

	logger.Debug().
		Str("output", output).
		Dur("total", time.Since(start)).
		Msg("wrote ASCII image")

	return 0
}
