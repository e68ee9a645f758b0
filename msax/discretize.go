package msax

// Discretize maps each value to a symbol index in [0, len(breakpoints)].
//
// A value gets the smallest index j such that value < breakpoints[j], or
// len(breakpoints) if there is none. A value equal to a breakpoint therefore
// falls into the higher symbol, and NaN always gets len(breakpoints).
// Breakpoints are scanned in order, so unsorted input is not rejected.
func Discretize(values, breakpoints []float64) []int {
	symbols := make([]int, len(values))
	for i, v := range values {
		symbols[i] = symbol(v, breakpoints)
	}
	return symbols
}

func symbol(v float64, breakpoints []float64) int {
	for j, b := range breakpoints {
		if v < b {
			return j
		}
	}
	return len(breakpoints)
}
