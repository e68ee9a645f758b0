// Command msax encodes a time series read from a file or standard input as a
// single MSAX word.
//
// Usage:
//
//	msax (FILENAME | -i FILENAME | -s) [-w INT] [-a INT] [-f INT] [-m normal|silent]
//
// Input is whitespace separated numbers, or one CSV column with -format csv.
// The word is written to standard output without a trailing newline; logs go
// to standard error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/gomsax/msax"
	"github.com/sartorproj/gomsax/timeseries"
)

var (
	errAmbiguousInput = errors.New("both an input file and -stream were given")
	errMissingInput   = errors.New("an input file or -stream is required")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("msax", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := defaultConfig()
	flags := defaults
	var input, configPath, logLevel string
	var stream bool

	fs.IntVar(&flags.WindowSize, "windowsize", defaults.WindowSize, "sliding window size")
	fs.IntVar(&flags.WindowSize, "w", defaults.WindowSize, "shorthand for -windowsize")
	fs.IntVar(&flags.AlphabetSize, "alphabetsize", defaults.AlphabetSize, "size of the alphabet")
	fs.IntVar(&flags.AlphabetSize, "a", defaults.AlphabetSize, "shorthand for -alphabetsize")
	fs.IntVar(&flags.FrameSize, "framesize", defaults.FrameSize, "data points per symbol")
	fs.IntVar(&flags.FrameSize, "f", defaults.FrameSize, "shorthand for -framesize")
	fs.StringVar(&flags.Mode, "mode", defaults.Mode, "output mode: normal or silent")
	fs.StringVar(&flags.Mode, "m", defaults.Mode, "shorthand for -mode")
	fs.StringVar(&flags.Format, "format", defaults.Format, "input format: text or csv")
	fs.StringVar(&flags.Column, "column", defaults.Column, "value column for csv input")
	fs.StringVar(&input, "input", "", "input file")
	fs.StringVar(&input, "i", "", "shorthand for -input")
	fs.BoolVar(&stream, "stream", false, "read data from standard input")
	fs.BoolVar(&stream, "s", false, "shorthand for -stream")
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&logLevel, "log-level", "warn", "log level")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "msax encodes a time series as a symbolic word.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "usage: msax (FILENAME | -i FILENAME | -s) [-w INT] [-a INT] [-f INT] [-m normal|silent]")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	// flag stops at the first positional argument; resume after each one so
	// that flags may follow the file name.
	var positional []string
	for rest := args; ; {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			return 2
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Error("invalid log level")
		return 2
	}
	log.SetLevel(level)

	cfg := defaults
	if configPath != "" {
		if err := loadConfigFile(configPath, &cfg); err != nil {
			log.WithError(err).Error("failed to load config")
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w", "windowsize":
			cfg.WindowSize = flags.WindowSize
		case "a", "alphabetsize":
			cfg.AlphabetSize = flags.AlphabetSize
		case "f", "framesize":
			cfg.FrameSize = flags.FrameSize
		case "m", "mode":
			cfg.Mode = flags.Mode
		case "format":
			cfg.Format = flags.Format
		case "column":
			cfg.Column = flags.Column
		}
	})

	switch len(positional) {
	case 0:
	case 1:
		if input != "" {
			log.WithField("args", positional).Error(errAmbiguousInput)
			return 2
		}
		input = positional[0]
	default:
		log.WithField("args", positional).Error("too many arguments")
		return 2
	}

	if input != "" && stream {
		log.Error(errAmbiguousInput)
		return 2
	}
	if input == "" && !stream {
		log.Error(errMissingInput)
		return 2
	}

	if err := cfg.validate(); err != nil {
		log.WithError(err).Error("invalid configuration")
		return 2
	}

	series, err := load(cfg, input, stdin)
	var perr *timeseries.ParseError
	if errors.As(err, &perr) {
		log.WithError(err).WithField("values", series.Len()).Warn("input truncated at non-numeric token")
	} else if err != nil {
		log.WithError(err).WithField("input", input).Error("failed to read input")
		return 1
	}

	log.WithFields(logrus.Fields{
		"points": series.Len(),
		"mean":   series.Mean(),
		"std":    series.Std(),
		"min":    series.Min(),
		"max":    series.Max(),
	}).Debug("loaded series")

	result, err := msax.Transform(series.Values, cfg.params())
	if err != nil {
		log.WithError(err).WithField("points", series.Len()).Error("failed to encode series")
		return 1
	}

	log.WithFields(logrus.Fields{
		"window":   cfg.WindowSize,
		"alphabet": cfg.AlphabetSize,
		"frame":    cfg.FrameSize,
		"symbols":  len(result.Symbols),
	}).Info("encoded series")

	if cfg.Mode != modeSilent {
		fmt.Fprint(stdout, result.Word())
	}
	return 0
}

// load reads the series from the named file, or from stdin when name is empty.
func load(cfg config, name string, stdin io.Reader) (*timeseries.Series, error) {
	if cfg.Format == formatCSV {
		opts := timeseries.DefaultCSVOptions()
		opts.ValueColumn = cfg.Column
		if name == "" {
			return timeseries.LoadCSVFromReader(stdin, opts)
		}
		return timeseries.LoadCSV(name, opts)
	}

	if name == "" {
		return timeseries.LoadText(stdin)
	}
	return timeseries.LoadTextFile(name)
}
