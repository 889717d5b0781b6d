package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/paths"
)

// Options controls where the global logger writes.
type Options struct {
	// Verbosity is the count of -v flags: 0 warn, 1 info, 2 debug, 3+ trace.
	Verbosity int
	// LogFile receives a copy of every entry. Empty keeps logs on the console.
	LogFile string
	// Console defaults to os.Stderr.
	Console io.Writer
	NoColor bool
}

var (
	fileMu   sync.Mutex
	openFile *os.File
)

// SetupLogger configures the global logger for the CLI: console on stderr
// plus the default log file in the state directory.
func SetupLogger(verbosity int, noColor bool) {
	Setup(Options{
		Verbosity: verbosity,
		LogFile:   paths.DefaultLogFile(),
		NoColor:   noColor,
	})
}

// Setup installs the global logger described by opts. A log file opened by an
// earlier call is closed once the new logger is in place.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	// Pretty console output; the file gets plain JSON lines
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	var file *os.File
	var fileErr error
	if opts.LogFile != "" {
		file, fileErr = openLogFile(opts.LogFile)
		if fileErr == nil {
			writers = append(writers, file)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	swapFile(file)

	// Reported through the new logger so it reaches the console
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to create log file, logging to console only")
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.LogFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// openLogFile creates the log file and its parent directories
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to create log directory").
			WithDetail("path", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to open log file").
			WithDetail("path", path)
	}
	return file, nil
}

func swapFile(file *os.File) {
	fileMu.Lock()
	defer fileMu.Unlock()
	if openFile != nil {
		_ = openFile.Close()
	}
	openFile = file
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
