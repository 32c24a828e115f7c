// Package errors re-exports github.com/cockroachdb/errors so the rest of
// the module has one import for wrapping, hints and inspection.
//
//	if err != nil {
//	    return errors.Wrapf(err, "day %d", day)
//	}
//
// See https://pkg.go.dev/github.com/cockroachdb/errors.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
)

// User-facing hints
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	FlattenHints = crdb.FlattenHints
)

// Inspection
var (
	Is = crdb.Is
	As = crdb.As
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)
