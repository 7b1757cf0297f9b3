// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build roundshiftdiag

package diag

// Enabled is true in builds with the `roundshiftdiag` tag.
const Enabled = true
