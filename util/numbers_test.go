package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCents(t *testing.T) {
	testCases := []struct {
		total     float64
		numSplits int
		expected  []float64
	}{
		{
			total:     0,
			numSplits: 1,
			expected:  []float64{0},
		},
		{
			total:     0.01,
			numSplits: 2,
			expected:  []float64{0.01, 0},
		},
		{
			total:     0.02,
			numSplits: 3,
			expected:  []float64{0.01, 0.01, 0},
		},
		{
			total:     10,
			numSplits: 1,
			expected:  []float64{10},
		},
		{
			total:     10,
			numSplits: 2,
			expected:  []float64{5, 5},
		},
		{
			total:     85,
			numSplits: 3,
			expected:  []float64{28.34, 28.33, 28.33},
		},
		{
			total:     100.01,
			numSplits: 2,
			expected:  []float64{50.01, 50},
		},
	}

	for _, tc := range testCases {
		result := make([]float64, tc.numSplits)
		SplitCents(tc.total, tc.numSplits, result)
		if !cmp.Equal(result, tc.expected) {
			t.Errorf("SplitCents(%v, %d) = %v, expected %v", tc.total, tc.numSplits, result, tc.expected)
		}
	}
}

func TestFloorDecimal(t *testing.T) {
	testCases := []struct {
		num      float64
		digits   int
		expected float64
	}{
		{num: 28.3333333, digits: 2, expected: 28.33},
		{num: 17.5, digits: 2, expected: 17.5},
		{num: 10, digits: 0, expected: 10},
		{num: 0.019999, digits: 2, expected: 0.01},
	}

	for _, tc := range testCases {
		result := FloorDecimal(tc.num, tc.digits)
		if result != tc.expected {
			t.Errorf("FloorDecimal(%v, %d) = %v, expected %v", tc.num, tc.digits, result, tc.expected)
		}
	}
}

func TestRoundDecimal(t *testing.T) {
	testCases := []struct {
		num      float64
		digits   int
		expected float64
	}{
		{num: 28.336, digits: 2, expected: 28.34},
		{num: 28.334, digits: 2, expected: 28.33},
		{num: 10.5, digits: 0, expected: 11},
		{num: 0.00334999, digits: 4, expected: 0.0033},
	}

	for _, tc := range testCases {
		result := RoundDecimal(tc.num, tc.digits)
		if result != tc.expected {
			t.Errorf("RoundDecimal(%v, %d) = %v, expected %v", tc.num, tc.digits, result, tc.expected)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(0.1+0.2, 0.3) {
		t.Error("0.1+0.2 should be nearly equal to 0.3")
	}
	if NearlyEqual(0.3, 0.31) {
		t.Error("0.3 should not be nearly equal to 0.31")
	}
	if Greater(0.3, 0.1+0.2) {
		t.Error("0.3 should not be greater than 0.1+0.2")
	}
	if !GreaterOrNearlyEqual(0.1+0.2, 0.3) {
		t.Error("0.1+0.2 should be greater or nearly equal to 0.3")
	}
}
