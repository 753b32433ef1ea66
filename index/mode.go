// SPDX-License-Identifier: MIT

// Package index - boundary modes and the single-index resolver.
//
// Purpose:
//   - Resolve one integer index against one extent under a named policy.
//   - Keep the policy table in one place so views, linear translation and
//     per-call overrides share identical semantics.
//
// AI-Hints:
//   - Throw does NOT accept negative indices; use Normalize for i+n semantics.
//   - Wrap and Clamp over an empty extent fail instead of inventing an element.
package index

import (
	"fmt"
	"strings"
)

// Mode is a boundary-resolution policy for an index that may fall outside
// its dimension.
type Mode uint8

const (
	// Throw requires 0 <= i < n exactly.
	Throw Mode = iota
	// Wrap resolves i with a floored (always non-negative) modulo n.
	Wrap
	// Clamp pins i to 0 below the range and to n-1 above it.
	Clamp
	// Normalize maps a negative i to i+n once, then requires 0 <= i < n.
	Normalize
)

// DefaultMode is the mode a view uses when none is configured.
const DefaultMode = Throw

// mode names, also the accepted ParseMode inputs
const (
	_nameThrow     = "throw"
	_nameWrap      = "wrap"
	_nameClamp     = "clamp"
	_nameNormalize = "normalize"
)

// Modes returns every Mode in declaration order.
func Modes() []Mode { return []Mode{Throw, Wrap, Clamp, Normalize} }

// Valid reports whether m is a member of the enumeration.
func (m Mode) Valid() bool { return m <= Normalize }

// String returns the canonical lower-case name ("throw", "wrap", ...).
func (m Mode) String() string {
	switch m {
	case Throw:
		return _nameThrow
	case Wrap:
		return _nameWrap
	case Clamp:
		return _nameClamp
	case Normalize:
		return _nameNormalize
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode maps a mode name to its Mode. Matching is case-insensitive and
// ignores surrounding whitespace.
//
// Errors:
//   - ErrInvalidMode for unknown names.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case _nameThrow:
		return Throw, nil
	case _nameWrap:
		return Wrap, nil
	case _nameClamp:
		return Clamp, nil
	case _nameNormalize:
		return Normalize, nil
	}

	return Throw, fmt.Errorf("ParseMode(%q): %w", s, ErrInvalidMode)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("Mode.MarshalText(%d): %w", uint8(m), ErrInvalidMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Resolve maps index i onto [0, n) under mode m.
// MAIN DESCRIPTION:
//   - Pure policy function used for every subscript and every linear index.
//
// Implementation:
//   - Stage 1: reject unknown modes.
//   - Stage 2: reject empty extents (n <= 0) for every mode.
//   - Stage 3: apply the policy.
//
// Behavior highlights:
//   - Throw:     0 <= i < n, else ErrOutOfRange (negative i is never shifted).
//   - Wrap:      ((i % n) + n) % n.
//   - Clamp:     i<0 → 0, i>=n → n-1.
//   - Normalize: i<0 → i+n once, then 0 <= i < n, else ErrOutOfRange.
//
// Errors:
//   - ErrInvalidMode, ErrOutOfRange (unwrapped; callers add context).
//
// Complexity:
//   - Time O(1), Space O(1).
func Resolve(i, n int, m Mode) (int, error) {
	if !m.Valid() {
		return 0, ErrInvalidMode
	}
	// No element exists to select, whatever the policy says.
	if n <= 0 {
		return 0, ErrOutOfRange
	}

	switch m {
	case Wrap:
		return ((i % n) + n) % n, nil
	case Clamp:
		if i < 0 {
			return 0, nil
		}
		if i >= n {
			return n - 1, nil
		}
		return i, nil
	case Normalize:
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return 0, ErrOutOfRange
		}
		return i, nil
	default: // Throw
		if i < 0 || i >= n {
			return 0, ErrOutOfRange
		}
		return i, nil
	}
}

// ModeFor returns the mode assigned to dimension dim by a sticky mode list:
// dimensions past the end of modes reuse its last entry, and an empty list
// yields fallback.
// Complexity: O(1).
func ModeFor(modes []Mode, dim int, fallback Mode) Mode {
	if len(modes) == 0 {
		return fallback
	}

	return modes[min(dim, len(modes)-1)]
}
