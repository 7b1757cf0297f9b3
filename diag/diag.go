// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package diag reports misuse of the rounding APIs: shifts outside the valid
// range and products that overflow their working width. Reports are advisory
// and never alter a computed value.
//
// Call sites only report when [Enabled] is true, which requires building with
// the `roundshiftdiag` tag. Reports are written as single warning lines to
// [os.Stderr] unless redirected with [SetLogger].
package diag

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ava-labs/roundshift/intmath"
)

var (
	override      atomic.Pointer[logging.Logger]
	defaultLogger = sync.OnceValue(func() logging.Logger {
		return logging.NewLogger("roundshift", logging.NewWrappedCore(
			logging.Warn, os.Stderr, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				MessageKey:  "msg",
				TimeKey:     "time",
				LevelKey:    "level",
				EncodeLevel: zapcore.CapitalLevelEncoder,
				EncodeTime:  zapcore.ISO8601TimeEncoder,
			}),
		))
	})
)

// Logger returns the logger that receives reports.
func Logger() logging.Logger {
	if l := override.Load(); l != nil {
		return *l
	}
	return defaultLogger()
}

// SetLogger redirects reports to `l` until the returned function is called,
// which restores the previous logger. A nil `l` restores the default.
func SetLogger(l logging.Logger) (restore func()) {
	var next *logging.Logger
	if l != nil {
		next = &l
	}
	prev := override.Swap(next)
	return func() { override.Store(prev) }
}

// InvalidShift reports that operation `op` on `kind` was called with a shift
// greater than the kind's maximum. The remaining arguments of the call are
// passed as `args`.
func InvalidShift(op string, kind intmath.Kind, shift uint8, args ...zap.Field) {
	Logger().Warn("invalid shift",
		append([]zap.Field{
			zap.String("op", op),
			zap.Stringer("kind", kind),
			zap.Uint8("shift", shift),
			zap.Uint8("maxShift", kind.MaxShift()),
		}, args...)...,
	)
}

// Overflow reports that the intermediate product of operation `op` on `kind`
// does not fit in the kind's width. The returned value of the operation will
// reflect two's-complement wraparound.
func Overflow(op string, kind intmath.Kind, args ...zap.Field) {
	Logger().Warn("product overflows working width",
		append([]zap.Field{
			zap.String("op", op),
			zap.Stringer("kind", kind),
		}, args...)...,
	)
}
