// SPDX-License-Identifier: MIT

package ndarray

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported helpers and an options snapshot to ndarray_test only.
//   - The file name ends in _test.go, so none of this is part of the package API.

// SubmodeFor_TestOnly exposes (*Ndarray).submodeFor.
var SubmodeFor_TestOnly = (*Ndarray).submodeFor

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Mode     string
	Submodes []string
	ReadOnly bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as New does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) (OptionsSnapshot, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return OptionsSnapshot{}, err
	}
	s := OptionsSnapshot{Mode: o.mode.String(), ReadOnly: o.readOnly}
	for _, m := range o.submodes {
		s.Submodes = append(s.Submodes, m.String())
	}

	return s, nil
}
