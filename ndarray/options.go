// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for view construction.
// This file defines:
//   - Option / Options (functional options resolved into one struct),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which applies setters and validates the result.
//
// Design goals:
//   - One configuration record with named, defaulted fields, filled once at
//     construction.
//   - No global state; last writer wins when the same field is set twice.
//   - Mode values can come from user data (index.ParseMode), so an invalid
//     mode is reported as ErrInvalidArgument by New instead of panicking.
package ndarray

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/strided/index"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMode resolves out-of-range subscripts and linear indices by failing.
	DefaultMode = index.DefaultMode

	// DefaultReadOnly leaves views writable.
	DefaultReadOnly = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective view configuration after applying Option setters.
// Fields are unexported; New consumes ...Option and resolves them via gatherOptions.
type Options struct {
	mode     index.Mode   // default mode, linear indices and unlisted dimensions
	submodes []index.Mode // per-dimension modes, sticky; nil means "use mode"
	readOnly bool         // reject Set/ISet
}

// WithMode sets the default mode.
// Behavior highlights:
//   - Applies to linear indices and to every dimension without a submode.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMode(m index.Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithSubmodes sets per-dimension modes.
// Behavior highlights:
//   - A list shorter than the rank reuses its last entry for higher dimensions.
//   - An empty list restores the default (every dimension uses the default mode).
//   - The slice is copied; later caller mutations do not leak in.
//
// Complexity:
//   - Time O(len(ms)), Space O(len(ms)).
func WithSubmodes(ms ...index.Mode) Option {
	cp := slices.Clone(ms)
	if len(cp) == 0 {
		cp = nil
	}

	return func(o *Options) { o.submodes = cp }
}

// WithReadOnly makes the view reject every write.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

// WithWritable makes the view accept writes (default).
func WithWritable() Option {
	return func(o *Options) { o.readOnly = DefaultReadOnly }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		mode:     DefaultMode,
		submodes: nil,
		readOnly: DefaultReadOnly,
	}
}

// gatherOptions applies setters on top of defaults, then validates modes.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (nil setters are skipped).
//   - Stage 3: ValidateMode / ValidateSubmodes.
//
// Errors:
//   - ErrInvalidArgument wrapping index.ErrInvalidMode.
//
// Complexity:
//   - Time O(len(opts) + len(submodes)).
func gatherOptions(user ...Option) (Options, error) {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}
	if err := ValidateMode(o.mode); err != nil {
		return Options{}, fmt.Errorf("options: %w", err)
	}
	if err := ValidateSubmodes(o.submodes); err != nil {
		return Options{}, fmt.Errorf("options: %w", err)
	}

	return o, nil
}
