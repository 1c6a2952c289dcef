package seq

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		values   []int32
		expected int32
	}{
		{nil, 0},
		{[]int32{}, 0},
		{[]int32{1, 2, 3, 4, 5}, 15},
		{[]int32{42}, 42},
		{[]int32{1, -1, 5}, 5},
		{[]int32{-7, -8}, -15},
		{[]int32{math.MaxInt32, 1}, math.MinInt32}, // wraps
		{[]int32{math.MinInt32, -1}, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.values), func(t *testing.T) {
			got := Sum(tt.values)
			if got != tt.expected {
				t.Errorf("Sum(%v) = %d, want %d", tt.values, got, tt.expected)
			}
		})
	}
}

func TestSumOtherIntegerTypes(t *testing.T) {
	if got := Sum([]int{1, 2, 3}); got != 6 {
		t.Errorf("Sum([]int) = %d, want 6", got)
	}
	if got := Sum([]uint8{200, 100}); got != 44 {
		t.Errorf("Sum([]uint8) = %d, want 44", got)
	}
}

func TestSumIgnoresOrder(t *testing.T) {
	values := []int32{9, -4, math.MaxInt32, 17, 0, -3, 1}
	want := Sum(values)

	reversed := slices.Clone(values)
	slices.Reverse(reversed)
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	for i := range values {
		rotated := append(slices.Clone(values[i:]), values[:i]...)
		if got := Sum(rotated); got != want {
			t.Errorf("Sum(%v) = %d, want %d", rotated, got, want)
		}
	}
	if got := Sum(reversed); got != want {
		t.Errorf("Sum(%v) = %d, want %d", reversed, got, want)
	}
	if got := Sum(sorted); got != want {
		t.Errorf("Sum(%v) = %d, want %d", sorted, got, want)
	}
}

func TestSumChecked(t *testing.T) {
	tests := []struct {
		values   []int32
		expected int32
		overflow bool
	}{
		{nil, 0, false},
		{[]int32{1, 2, 3, 4, 5}, 15, false},
		{[]int32{math.MaxInt32, -1, 1}, math.MaxInt32, false},
		{[]int32{math.MaxInt32, 1}, 0, true},
		{[]int32{math.MaxInt32, 1, -1}, 0, true}, // partial sum already overflowed
		{[]int32{math.MinInt32, -1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.values), func(t *testing.T) {
			got, err := SumChecked(tt.values)
			if errors.Is(err, ErrOverflow) != tt.overflow {
				t.Fatalf("SumChecked(%v) error = %v, overflow expected: %v", tt.values, err, tt.overflow)
			}
			if got != tt.expected {
				t.Errorf("SumChecked(%v) = %d, want %d", tt.values, got, tt.expected)
			}
		})
	}
}
