// Command successive prints the sliding windows of its standard input's lines.
//
//	$ printf 'a\nb\nc\n' | successive -n 2
//	a	b
//	b	c
//
// Defaults can be set with the ITERUTIL_WINDOW_SIZE, ITERUTIL_SEPARATOR and ITERUTIL_LOG_LEVEL environment variables.
// ITERUTIL_ENV_FILE names a dotenv file to read them from; variables already set in the environment take precedence.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"go.llib.dev/iterutil/pkg/env"
	"go.llib.dev/iterutil/pkg/iterkit"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const envFileKey = "ITERUTIL_ENV_FILE"

type Config struct {
	WindowSize int           `env:"ITERUTIL_WINDOW_SIZE" env-default:"2"`
	Separator  string        `env:"ITERUTIL_SEPARATOR" env-default:"\t"`
	LogLevel   zerolog.Level `env:"ITERUTIL_LOG_LEVEL" env-default:"info"`
	// Trailer is emitted as the last line of the input, once the input is exhausted.
	Trailer string
}

func loadConfig(args []string, output io.Writer) (Config, error) {
	var c Config
	if path, ok := os.LookupEnv(envFileKey); ok && path != "" {
		if err := godotenv.Load(path); err != nil {
			return c, err
		}
	}
	if err := env.Load(&c); err != nil {
		return c, err
	}
	fs := flag.NewFlagSet("successive", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&c.WindowSize, "n", c.WindowSize, "number of lines in a window")
	fs.StringVar(&c.Separator, "sep", c.Separator, "separator between the lines of a window")
	fs.StringVar(&c.Trailer, "trailer", "", "line to emit after the end of the input")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	return c, fs.Parse(args)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("cmd", "successive").
		Logger()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := loadConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger := newLogger(stderr, zerolog.InfoLevel)
		logger.Error().Err(err).Msg("invalid configuration")
		return exitUsage
	}
	logger := newLogger(stderr, c.LogLevel)

	lines, err := readLines(ctx, stdin, c.Trailer)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up the line reader")
		return exitFailure
	}
	windows, err := iterkit.SuccessivePull[string](lines, c.WindowSize)
	if err != nil {
		_ = lines.Close()
		logger.Error().Err(err).Int("window_size", c.WindowSize).Msg("invalid window size")
		return exitUsage
	}
	defer windows.Close()

	out := bufio.NewWriter(stdout)
	var count int
	for windows.Next() {
		if _, err := fmt.Fprintln(out, strings.Join(windows.Value(), c.Separator)); err != nil {
			logger.Error().Err(err).Msg("failed to write output")
			return exitFailure
		}
		count++
	}
	if err := windows.Err(); err != nil {
		logger.Error().Err(err).Int("windows", count).Msg("failed to read input")
		_ = out.Flush()
		return exitFailure
	}
	if err := out.Flush(); err != nil {
		logger.Error().Err(err).Msg("failed to write output")
		return exitFailure
	}
	logger.Debug().Int("windows", count).Int("window_size", c.WindowSize).Msg("done")
	return exitOK
}

// readLines turns r into an iterator of lines.
// The input ends at io.EOF, and when trailer is not empty, it is yielded as the last line.
func readLines(ctx context.Context, r io.Reader, trailer string) (*iterkit.IterExceptIter[string], error) {
	br := bufio.NewReader(r)
	opts := []iterkit.IterExceptOption[string]{
		iterkit.Except[string](io.EOF),
	}
	if trailer != "" {
		opts = append(opts, iterkit.Fallback(func() (string, error) {
			return trailer, nil
		}))
	}
	return iterkit.IterExcept(func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			// the last line has no line break, the next read reports the io.EOF again
			err = nil
		}
		if err != nil {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}, opts...)
}
