// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package diag

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ava-labs/roundshift/intmath"
	"github.com/ava-labs/roundshift/roundshifttest"
)

func TestReports(t *testing.T) {
	rec := roundshifttest.NewLogRecorder(logging.Debug)
	restore := SetLogger(rec)
	t.Cleanup(restore)

	InvalidShift("Shift", intmath.Int8, 9, zap.Int8("num", 42))
	Overflow("Scale", intmath.Uint16, zap.Uint16("num", 300), zap.Uint16("mul", 300))

	got := rec.At(logging.Warn)
	require.Len(t, got, 2, "WARN logs")

	assert.Equal(t, "invalid shift", got[0].Msg)
	assert.Equal(t, map[string]any{
		"op":       "Shift",
		"kind":     "int8",
		"shift":    uint8(9),
		"maxShift": uint8(6),
		"num":      int8(42),
	}, got[0].FieldMap())

	assert.Equal(t, "product overflows working width", got[1].Msg)
	assert.Equal(t, map[string]any{
		"op":   "Scale",
		"kind": "uint16",
		"num":  uint16(300),
		"mul":  uint16(300),
	}, got[1].FieldMap())
}

func TestSetLogger(t *testing.T) {
	def := Logger()
	require.NotNil(t, def)

	rec := roundshifttest.NewLogRecorder(logging.Debug)
	restore := SetLogger(rec)
	assert.Same(t, rec, Logger())

	inner := SetLogger(nil)
	assert.Equal(t, def, Logger(), "SetLogger(nil) restores the default")
	inner()
	assert.Same(t, rec, Logger())

	restore()
	assert.Equal(t, def, Logger())
}
