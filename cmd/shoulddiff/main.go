// Command shoulddiff prints how the assertion library would render two
// documents and the difference between them.
//
//	shoulddiff [-config should.yaml] [-digest] [-v] expected.yaml actual.msgpack
//
// With -digest each rendering is followed by its xxhash fingerprint. Documents
// with the same content render alike whatever their format, so the
// fingerprints can be compared across runs.
//
// The exit code is 0 when the documents are equal, 1 when they differ and 2
// when they can't be read.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/ogzhanolguncu/shouldbe/highlight"
	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/ogzhanolguncu/shouldbe/should"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitEqual  = 0
	exitDiffer = 1
	exitError  = 2
)

var errUsage = errors.New("usage: shoulddiff [-config file] [-digest] [-v] expected actual")

func main() {
	code, err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		log.Printf("shoulddiff: %v", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	fs := flag.NewFlagSet("shoulddiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file with inspect and highlight settings")
	digest := fs.Bool("digest", false, "Print an xxhash fingerprint of each rendering")
	verbose := fs.Bool("v", false, "Log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}
	if fs.NArg() != 2 {
		return exitError, errUsage
	}

	logger := newLogger(stderr, *verbose)
	defer logger.Sync() //nolint:errcheck

	config := should.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = should.LoadConfig(*configPath)
		if err != nil {
			return exitError, err
		}
		logger.Debug("loaded config", zap.String("path", *configPath))
	}

	docs, err := loadDocuments(ctx, logger, fs.Arg(0), fs.Arg(1))
	if err != nil {
		return exitError, err
	}
	expected, actual := docs[0], docs[1]

	in := inspect.New(config.Inspect)
	hc := config.Highlight
	hc.Inspector = in
	registry := highlight.NewRegistry(hc)

	for _, doc := range []struct {
		label string
		value any
	}{{"expected", expected}, {"actual", actual}} {
		rendered := in.Inspect(doc.value)
		fmt.Fprintf(stdout, "%s\n    %s\n", doc.label, rendered)
		if *digest {
			fmt.Fprintf(stdout, "    xxhash %016x\n", xxhash.Sum64String(rendered))
		}
	}

	if assert.ObjectsAreEqual(expected, actual) {
		fmt.Fprintln(stdout, "equal")
		return exitEqual, nil
	}

	if h, ok := registry.For(expected, actual); ok {
		logger.Debug("highlighting difference", zap.String("highlighter", fmt.Sprintf("%T", h)))
	}
	fmt.Fprintf(stdout, "difference\n    %s\n", registry.Highlight(expected, actual))
	return exitDiffer, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}
