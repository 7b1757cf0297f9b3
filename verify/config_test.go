// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/roundshift/intmath"
)

func modifyDefaultConfig(fn func(*Config)) Config {
	c := DefaultConfig()
	fn(&c)
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid default",
			cfg:  DefaultConfig(),
		},
		{
			name:    "zero kind",
			cfg:     modifyDefaultConfig(func(c *Config) { c.Kind = 0 }),
			wantErr: errInvalidKind,
		},
		{
			name: "max signed shift",
			cfg:  modifyDefaultConfig(func(c *Config) { c.Shift = 6 }),
		},
		{
			name:    "signed shift beyond max",
			cfg:     modifyDefaultConfig(func(c *Config) { c.Shift = 7 }),
			wantErr: errShiftOutOfRange,
		},
		{
			name: "max unsigned shift",
			cfg: modifyDefaultConfig(func(c *Config) {
				c.Kind = intmath.Uint8
				c.Shift = 7
			}),
		},
		{
			name:    "negative shift",
			cfg:     modifyDefaultConfig(func(c *Config) { c.Shift = -2 }),
			wantErr: errShiftOutOfRange,
		},
		{
			name:    "exhaustive 64 bit",
			cfg:     modifyDefaultConfig(func(c *Config) { c.Kind = intmath.Uint64 }),
			wantErr: errExhaustiveTooWide,
		},
		{
			name: "sampled 64 bit",
			cfg: modifyDefaultConfig(func(c *Config) {
				c.Kind = intmath.Int64
				c.Samples = 1
			}),
		},
		{
			name: "exhaustive 32 bit",
			cfg:  modifyDefaultConfig(func(c *Config) { c.Kind = intmath.Int32 }),
		},
		{
			name: "exhaustive multipliers 32 bit",
			cfg: modifyDefaultConfig(func(c *Config) {
				c.Kind = intmath.Int32
				c.Multipliers = true
			}),
			wantErr: errExhaustiveMulTooWide,
		},
		{
			name: "sampled multipliers 32 bit",
			cfg: modifyDefaultConfig(func(c *Config) {
				c.Kind = intmath.Int32
				c.Multipliers = true
				c.Samples = 100
			}),
		},
		{
			name:    "zero workers",
			cfg:     modifyDefaultConfig(func(c *Config) { c.Workers = 0 }),
			wantErr: errWorkersNotPositive,
		},
		{
			name:    "negative max failures",
			cfg:     modifyDefaultConfig(func(c *Config) { c.MaxFailures = -1 }),
			wantErr: errMaxFailuresNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConfigShifts(t *testing.T) {
	cfg := DefaultConfig()
	if diff := cmp.Diff([]uint8{0, 1, 2, 3, 4, 5, 6}, cfg.shifts()); diff != "" {
		t.Errorf("%T.shifts() for all %v shifts diff (-want +got):\n%s", cfg, cfg.Kind, diff)
	}
	cfg.Shift = 3
	if diff := cmp.Diff([]uint8{3}, cfg.shifts()); diff != "" {
		t.Errorf("%T.shifts() for single shift diff (-want +got):\n%s", cfg, diff)
	}
}
