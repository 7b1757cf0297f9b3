// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roundshift_test

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/roundshift"
	"github.com/ava-labs/roundshift/diag"
	"github.com/ava-labs/roundshift/roundshifttest"
)

// TestDiagnostics confirms that misuse is reported only in diagnostic builds
// and that reporting never changes a result.
func TestDiagnostics(t *testing.T) {
	rec := roundshifttest.NewLogRecorder(logging.Debug)
	t.Cleanup(diag.SetLogger(rec))

	assert.Zero(t, roundshift.Shift[int8](1, 7), "Shift[int8](1, 7)")
	assert.Zero(t, roundshift.Scale[uint16](1, 2, 16), "Scale[uint16](1, 2, 16)")
	// 100*3 wraps to 44 in int8
	assert.Equal(t, int8(11), roundshift.Scale[int8](100, 3, 2), "Scale[int8](100, 3, 2)")
	assert.Equal(t, int8(11), roundshift.Int8Divisors[2].Scale(100, 3), "Int8Divisors[2].Scale(100, 3)")
	// Valid calls are never reported.
	assert.Equal(t, int8(2), roundshift.Shift[int8](3, 1))

	got := rec.AtLeast(logging.Debug)
	if !diag.Enabled {
		assert.Empty(t, got, "reports without the roundshiftdiag build tag")
		return
	}

	require.Len(t, got, 4, "reports with the roundshiftdiag build tag")
	for i, want := range []struct{ msg, op, kind string }{
		{"invalid shift", "Shift", "int8"},
		{"invalid shift", "Scale", "uint16"},
		{"product overflows working width", "Scale", "int8"},
		{"product overflows working width", "Divisor.Scale", "int8"},
	} {
		assert.Equalf(t, logging.Warn, got[i].Level, "report[%d] level", i)
		assert.Equalf(t, want.msg, got[i].Msg, "report[%d] message", i)
		fields := got[i].FieldMap()
		assert.Equalf(t, want.op, fields["op"], "report[%d] op", i)
		assert.Equalf(t, want.kind, fields["kind"], "report[%d] kind", i)
	}
	assert.Equal(t, int8(44), got[2].FieldMap()["wrapped"], "wrapped product")
}
