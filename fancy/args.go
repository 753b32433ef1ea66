// SPDX-License-Identifier: MIT

package fancy

import (
	"fmt"
	"math"
	"reflect"

	"fortio.org/safecast"

	"github.com/katalvlaran/strided/ndarray"
)

// toIndex converts one dynamically typed index argument to int.
// pos is the argument position, used only in the error message.
//
// Accepted: every integer kind (named types included) whose value fits in
// int, and finite floats with no fractional part inside the int range.
func toIndex(pos int, v any) (int, error) {
	if i, ok := v.(int); ok {
		return i, nil
	}
	if v == nil {
		return 0, indexTypeError(pos, v, nil)
	}

	var (
		i   int
		err error
	)
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err = safecast.Conv[int](rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err = safecast.Conv[int](rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// int(f) is implementation-defined outside this range, so the
		// round-trip check in Convert cannot be trusted there.
		if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
			return 0, indexTypeError(pos, v, safecast.ErrOutOfRange)
		}
		if f != math.Trunc(f) {
			return 0, indexTypeError(pos, v, nil)
		}
		i, err = safecast.Convert[int](f)
	default:
		return 0, indexTypeError(pos, v, nil)
	}
	if err != nil {
		return 0, indexTypeError(pos, v, err)
	}

	return i, nil
}

// toIndices converts args in order; the first bad argument wins.
func toIndices(args []any, out []int) ([]int, error) {
	for p, v := range args {
		i, err := toIndex(p, v)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}

	return out, nil
}

// indexTypeError reports argument pos; cause, when set, is the conversion failure.
func indexTypeError(pos int, v any, cause error) error {
	if cause != nil {
		return fmt.Errorf("argument %d (%T %v): %w: %w", pos, v, v, cause, ndarray.ErrInvalidIndexType)
	}

	return fmt.Errorf("argument %d (%T %v): %w", pos, v, v, ndarray.ErrInvalidIndexType)
}
