// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The roundverify binary checks the division-free rounding functions against
// exact division for one integer kind.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/roundshift/intmath"
	"github.com/ava-labs/roundshift/verify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic // stop() called explicitly
	}
}

var errMismatch = errors.New("rounding mismatches found")

func newCommand() *cobra.Command {
	var (
		cfg      = verify.DefaultConfig()
		kind     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "roundverify",
		Short:        "Check division-free rounding against exact division",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := intmath.ParseKind(kind)
			if err != nil {
				return err
			}
			cfg.Kind = k

			lvl, err := logging.ToLevel(logLevel)
			if err != nil {
				return err
			}
			log := newLogger(lvl)

			r, err := verify.Run(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			for _, f := range r.Failures {
				log.Error("Mismatch", zap.Stringer("failure", f))
			}
			if !r.OK() {
				return fmt.Errorf("%w: %d (%d shown)", errMismatch, r.FailureCount, len(r.Failures))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %d inputs checked, %d skipped, no mismatches\n", r.Kind, r.Checked, r.Skipped)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&kind, "kind", cfg.Kind.String(), "integer kind to check, e.g. int16 or uint64")
	fs.IntVar(&cfg.Shift, "shift", cfg.Shift, "single shift to check; -1 checks every valid shift")
	fs.Uint64Var(&cfg.Samples, "samples", cfg.Samples, "random inputs per shift; 0 checks every value (widths <= 32 only)")
	fs.BoolVar(&cfg.Multipliers, "multipliers", cfg.Multipliers, "also check non-unit multipliers")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of concurrent workers")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed when sampling")
	fs.IntVar(&cfg.MaxFailures, "max-failures", cfg.MaxFailures, "number of mismatches to report in detail")
	fs.StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func newLogger(lvl logging.Level) logging.Logger {
	return logging.NewLogger("roundverify", logging.NewWrappedCore(
		lvl, os.Stderr, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:  "msg",
			TimeKey:     "time",
			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		}),
	))
}
