package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"payments-engine/config"
	"payments-engine/feed"
	"payments-engine/ledger"
	"payments-engine/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = "usage: payments-engine <transactions.csv>"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run processes the single input file named in args, writes the summary CSV
// to stdout and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Error loading config:", err)
		return exitError
	}
	rejectLevel, err := logging.ParseLevel(cfg.RejectionLogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading config:", err)
		return exitError
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error creating logger:", err)
		return exitError
	}
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if err := processFile(args[0], stdout, logger, rejectLevel); err != nil {
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
	return exitOK
}

// processFile decodes every event from path, applies it and writes the
// snapshot. Nothing is written to out unless the whole input decoded.
func processFile(path string, out io.Writer, logger *zap.Logger, rejectLevel zapcore.Level) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	l := ledger.New(ledger.WithLogger(logger))
	reader := feed.NewReader(file)
	for {
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		if err := l.Apply(ev); err != nil {
			logger.Log(rejectLevel, "event rejected",
				zap.String("kind", string(ev.Kind())),
				zap.Uint16("client", uint16(ev.ClientID())),
				zap.Uint32("tx", uint32(ev.TxID())),
				zap.String("reason", ledger.Reason(err)),
			)
		}
	}

	stats := l.Stats()
	logger.Info("input processed",
		zap.String("input", path),
		zap.Int("applied", stats.Applied),
		zap.Int("rejected", stats.Rejected),
		zap.Any("rejected_by_reason", stats.ByReason),
	)

	var buf bytes.Buffer
	if err := feed.NewWriter(&buf).WriteAll(l.Snapshot()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
