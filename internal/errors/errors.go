// Package errors provides error handling for the mapping generator.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user-facing hints from a single import:
//
//	if err := load(path); err != nil {
//	    return errors.Wrapf(err, "loading %s", path)
//	}
//
//	return errors.WithHint(errors.ErrConfig, "pass --mapping-file")
//
// Sentinels below classify failures for the CLI exit path.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages.
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
	Mark         = crdb.Mark
)

// Inspection.
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
	Join      = crdb.Join
)

// Sentinel errors. Wrap them (or Mark with them) to keep errors.Is working.
var (
	// ErrConfig indicates missing or malformed options.
	ErrConfig = New("invalid configuration")

	// ErrUnknownRoot indicates a root type name that no source declares.
	ErrUnknownRoot = New("unknown root type")

	// ErrAmbiguousRoot indicates a root type name declared by more than one source.
	ErrAmbiguousRoot = New("ambiguous root type")

	// ErrSource indicates a type descriptor source could not be loaded.
	ErrSource = New("type source failure")

	// ErrMappingFile indicates the mapping file could not be read, parsed or written.
	ErrMappingFile = New("mapping file failure")

	// ErrGeneration indicates a generator failed for a single mapping.
	ErrGeneration = New("generation failure")

	// ErrWrite indicates one or more artifacts could not be written.
	ErrWrite = New("artifact write failure")
)

// IsConfigError reports whether err is a configuration error that should be
// answered with usage text.
func IsConfigError(err error) bool {
	return IsAny(err, ErrConfig, ErrUnknownRoot, ErrAmbiguousRoot)
}
