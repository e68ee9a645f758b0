package msax

// Normalize z-normalizes values against a sliding window of windowSize
// points and returns a new slice of the same length.
//
// The window is primed with values[0:windowSize]. The first windowSize/2
// points are scored against that window. For every later source index i the
// window advances by one and the point (windowSize+1)/2 positions behind i is
// scored. The last (windowSize+1)/2 points are scored against the final
// window.
//
// Normalize panics if windowSize is less than 1 or greater than len(values).
// A zero-variance window produces ±Inf or NaN at the affected positions.
func Normalize(values []float64, windowSize int) []float64 {
	n := len(values)
	normalized := make([]float64, n)

	w := newRollingWindow(windowSize)
	for i := 0; i < windowSize; i++ {
		w.push(values[i])
	}

	// Leading edge: look ahead at the first window.
	for i := 0; i < windowSize/2; i++ {
		normalized[i] = w.zscore(values[i])
	}

	lag := (windowSize + 1) / 2
	for i := windowSize; i < n; i++ {
		w.push(values[i])
		j := i - lag
		normalized[j] = w.zscore(values[j])
	}

	// Trailing edge: look behind at the last window.
	for i := n - lag; i < n; i++ {
		normalized[i] = w.zscore(values[i])
	}

	return normalized
}
