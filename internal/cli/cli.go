// Package cli implements the roman command: integers become numerals and
// numerals become integers, one result per line.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/numeral-codec/roman"
	"github.com/numeral-codec/roman/internal/config"
)

// ErrInvalidInput is returned by Run in lenient mode when at least one
// input could not be converted.
var ErrInvalidInput = errors.New("invalid input")

// Config holds the command configuration.  Environment variables provide
// defaults and flags override them.
type Config struct {
	LogLevel string `env:"ROMAN_LOG_LEVEL" envDefault:"warn"`
	Strict   bool   `env:"ROMAN_STRICT" envDefault:"true"`

	// Inputs are the positional arguments.  When empty, Run reads
	// whitespace-separated inputs from its reader.
	Inputs []string
}

// ParseConfig reads the environment, then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "stop at the first input that cannot be converted")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Inputs = fs.Args()
	return cfg, nil
}

// Run converts every input and writes one line per input to out.
//
// In strict mode the first failure stops processing and is returned.
// Otherwise a failed input prints "-" and Run returns ErrInvalidInput
// once all inputs have been handled.
func Run(cfg Config, in io.Reader, out io.Writer, logger *zap.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	next, err := inputs(cfg.Inputs, in)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	total, failed := 0, 0
	for {
		tok, ok, err := next()
		if err != nil {
			return errors.Join(fmt.Errorf("read input: %w", err), w.Flush())
		}
		if !ok {
			break
		}
		total++

		result, err := Convert(tok)
		if err != nil {
			if cfg.Strict {
				return errors.Join(fmt.Errorf("convert %q: %w", tok, err), w.Flush())
			}
			failed++
			logger.Warn("rejected input", zap.String("input", tok), zap.Error(err))
			result = "-"
		} else {
			logger.Debug("converted", zap.String("input", tok), zap.String("output", result))
		}
		if _, err := fmt.Fprintln(w, result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("done", zap.Int("total", total), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs: %w", failed, total, ErrInvalidInput)
	}
	return nil
}

// Convert encodes a decimal integer or decodes a roman numeral.  Tokens
// made only of ASCII digits are treated as integers.
func Convert(tok string) (string, error) {
	if !isDigits(tok) {
		n, err := roman.Parse(tok)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(n), 10), nil
	}
	n, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return "", &roman.NumeralError{
			Code: roman.ErrRepresentation,
			Msg:  fmt.Sprintf("no roman numeral for %s", tok),
		}
	}
	return roman.Format(uint16(n))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// inputs returns an iterator over the positional arguments, or over the
// words read from in when there are none.
func inputs(args []string, in io.Reader) (func() (string, bool, error), error) {
	if len(args) > 0 {
		i := 0
		return func() (string, bool, error) {
			if i >= len(args) {
				return "", false, nil
			}
			i++
			return args[i-1], true, nil
		}, nil
	}
	if in == nil {
		return nil, errors.New("no inputs and no reader")
	}
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		return "", false, sc.Err()
	}, nil
}
