// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !roundshiftdiag

package diag

// Enabled is false unless built with the `roundshiftdiag` tag, in which case
// misuse is reported.
const Enabled = false
