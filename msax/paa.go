package msax

import "gonum.org/v1/gonum/stat"

// PAA performs Piecewise Aggregate Approximation, reducing values to the
// means of consecutive frames of frameSize points.
//
// The result has (len(values)-1)/frameSize + 1 elements. The last frame holds
// whatever remains and may be shorter than frameSize.
func PAA(values []float64, frameSize int) []float64 {
	n := len(values)
	if n == 0 {
		return []float64{}
	}

	m := (n-1)/frameSize + 1
	paa := make([]float64, m)
	for i := 0; i < m; i++ {
		start := i * frameSize
		end := start + frameSize
		if i == m-1 {
			end = n
		}
		paa[i] = stat.Mean(values[start:end], nil)
	}
	return paa
}
