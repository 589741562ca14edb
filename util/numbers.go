package util

import (
	"fmt"
	"math"
)

const epsilon = 0.000001

// CentUnit is the smallest chip amount that can be won or bet.
const CentUnit = 0.01

func FloorDecimal(num float64, digits int) float64 {
	switch digits {
	case 0:
		return math.Floor(num)
	case 2:
		return math.Floor(num*100+epsilon) / 100
	default:
		panic(fmt.Sprintf("FloorDecimal digits not supported: %d", digits))
	}
}

func RoundDecimal(num float64, digits int) float64 {
	switch digits {
	case 0:
		return math.Round(num)
	case 2:
		return math.Round(num*100) / 100
	case 4:
		return math.Round(num*10000) / 10000
	default:
		panic(fmt.Sprintf("RoundDecimal digits not supported: %d", digits))
	}
}

func NearlyEqual(a float64, b float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	return diff < epsilon
}

func Greater(a float64, b float64) bool {
	return a > b && !NearlyEqual(a, b)
}

func GreaterOrNearlyEqual(a float64, b float64) bool {
	if a > b || a == b {
		return true
	}

	return NearlyEqual(a, b)
}

// SplitCents divides total into numSplits shares floored to the cent.
// The leftover cents are handed out one at a time starting from the
// first share. The result slice must have length numSplits.
func SplitCents(total float64, numSplits int, result []float64) {
	share := FloorDecimal(total/float64(numSplits), 2)
	remaining := total
	for i := 0; i < numSplits; i++ {
		result[i] = share
		remaining = RoundDecimal(remaining-share, 2)
	}
	for i := 0; Greater(remaining, 0); i = (i + 1) % numSplits {
		result[i] = RoundDecimal(result[i]+CentUnit, 2)
		remaining = RoundDecimal(remaining-CentUnit, 2)
	}
}
