package seq

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var ErrOverflow = errors.New("integer overflow")

// Sum adds the elements of s from left to right. An empty slice sums to 0.
// Fixed width overflow wraps around (two's complement), the same as the + operator.
func Sum[S ~[]E, E constraints.Integer](s S) E {
	var sum E
	for _, value := range s {
		sum += value
	}
	return sum
}

// SumChecked is Sum for int32 that stops at the first partial sum leaving the
// int32 range and reports ErrOverflow instead of wrapping.
func SumChecked(s []int32) (int32, error) {
	var sum int64
	for i, value := range s {
		sum += int64(value)
		if sum > math.MaxInt32 || sum < math.MinInt32 {
			return 0, fmt.Errorf("sum at index %d: %w", i, ErrOverflow)
		}
	}
	return int32(sum), nil
}
