// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package ratio

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Ratio] instances
// in tests. The option will only be applied to the specific integer type.
// Ratios are compared by representation, so 1/2^1 and 2/2^2 differ.
func CmpOpt[T constraints.Integer]() cmp.Option {
	return cmp.Options{
		cmp.AllowUnexported(Ratio[T]{}),
		cmpopts.IgnoreFields(Ratio[T]{}, "shiftInvariants"),
	}
}
