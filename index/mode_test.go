// Package index_test verifies the boundary-mode resolver.
package index_test

import (
	"testing"

	"github.com/katalvlaran/strided/index"
	"github.com/stretchr/testify/require"
)

// TestResolveTable checks each mode against hand-computed cases.
func TestResolveTable(t *testing.T) {
	cases := []struct {
		name string
		i, n int
		m    index.Mode
		want int
		err  error
	}{
		{"throw in range", 2, 3, index.Throw, 2, nil},
		{"throw upper", 3, 3, index.Throw, 0, index.ErrOutOfRange},
		{"throw negative is not shifted", -1, 3, index.Throw, 0, index.ErrOutOfRange},
		{"wrap positive", 6, 3, index.Wrap, 0, nil},
		{"wrap negative", -1, 3, index.Wrap, 2, nil},
		{"wrap far negative", -7, 3, index.Wrap, 2, nil},
		{"wrap extent one", 100, 1, index.Wrap, 0, nil},
		{"clamp below", -5, 3, index.Clamp, 0, nil},
		{"clamp above", 6, 3, index.Clamp, 2, nil},
		{"clamp inside", 1, 3, index.Clamp, 1, nil},
		{"normalize negative", -1, 3, index.Normalize, 2, nil},
		{"normalize lowest", -3, 3, index.Normalize, 0, nil},
		{"normalize too negative", -4, 3, index.Normalize, 0, index.ErrOutOfRange},
		{"normalize upper", 3, 3, index.Normalize, 0, index.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := index.Resolve(tc.i, tc.n, tc.m)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestResolveZeroExtent ensures no mode invents an element in an empty dimension.
func TestResolveZeroExtent(t *testing.T) {
	for _, m := range index.Modes() {
		for _, i := range []int{-1, 0, 1, 7} {
			_, err := index.Resolve(i, 0, m)
			require.ErrorIs(t, err, index.ErrOutOfRange, "mode %s index %d", m, i)
		}
	}
}

// TestResolveInvalidMode rejects values outside the enumeration.
func TestResolveInvalidMode(t *testing.T) {
	_, err := index.Resolve(0, 3, index.Mode(42))
	require.ErrorIs(t, err, index.ErrInvalidMode)
}

// TestWrapProperties checks range and periodicity of Wrap over a grid.
func TestWrapProperties(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for i := -30; i <= 30; i++ {
			r, err := index.Resolve(i, n, index.Wrap)
			require.NoError(t, err)
			require.GreaterOrEqual(t, r, 0)
			require.Less(t, r, n)
			for k := -3; k <= 3; k++ {
				rk, err := index.Resolve(i+k*n, n, index.Wrap)
				require.NoError(t, err)
				require.Equal(t, r, rk, "i=%d n=%d k=%d", i, n, k)
			}
		}
	}
}

// TestClampProperties checks the three clamp regions over a grid.
func TestClampProperties(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for i := -20; i <= 20; i++ {
			r, err := index.Resolve(i, n, index.Clamp)
			require.NoError(t, err)
			switch {
			case i < 0:
				require.Equal(t, 0, r)
			case i >= n:
				require.Equal(t, n-1, r)
			default:
				require.Equal(t, i, r)
			}
		}
	}
}

// TestThrowNormalizeAsymmetry pins the difference between the two strict modes:
// Normalize accepts [-n, -1] while Throw rejects every negative index.
func TestThrowNormalizeAsymmetry(t *testing.T) {
	const n = 4
	for i := -n; i < 0; i++ {
		_, err := index.Resolve(i, n, index.Throw)
		require.ErrorIs(t, err, index.ErrOutOfRange)

		r, err := index.Resolve(i, n, index.Normalize)
		require.NoError(t, err)
		require.Equal(t, i+n, r)
	}
	for i := 0; i < n; i++ {
		a, err := index.Resolve(i, n, index.Throw)
		require.NoError(t, err)
		b, err := index.Resolve(i, n, index.Normalize)
		require.NoError(t, err)
		require.Equal(t, i, a)
		require.Equal(t, a, b)
	}
}

// TestParseMode covers names, case folding and rejection.
func TestParseMode(t *testing.T) {
	for _, m := range index.Modes() {
		got, err := index.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	got, err := index.ParseMode("  CLAMP ")
	require.NoError(t, err)
	require.Equal(t, index.Clamp, got)

	_, err = index.ParseMode("mirror")
	require.ErrorIs(t, err, index.ErrInvalidMode)
}

// TestModeText round-trips modes through the text codec.
func TestModeText(t *testing.T) {
	b, err := index.Wrap.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "wrap", string(b))

	var m index.Mode
	require.NoError(t, m.UnmarshalText([]byte("normalize")))
	require.Equal(t, index.Normalize, m)

	_, err = index.Mode(9).MarshalText()
	require.ErrorIs(t, err, index.ErrInvalidMode)
	require.Equal(t, "Mode(9)", index.Mode(9).String())
}

// TestModeForSticky verifies the last listed mode extends to higher dimensions.
func TestModeForSticky(t *testing.T) {
	ms := []index.Mode{index.Wrap, index.Clamp}
	require.Equal(t, index.Wrap, index.ModeFor(ms, 0, index.Throw))
	require.Equal(t, index.Clamp, index.ModeFor(ms, 1, index.Throw))
	require.Equal(t, index.Clamp, index.ModeFor(ms, 5, index.Throw))
	require.Equal(t, index.Normalize, index.ModeFor(nil, 3, index.Normalize))
}
