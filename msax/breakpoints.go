package msax

import "gonum.org/v1/gonum/stat/distuv"

// Breakpoints returns the alphabetSize-1 thresholds that split the standard
// normal distribution into alphabetSize equiprobable intervals. The i-th
// breakpoint is the quantile at (i+1)/alphabetSize.
//
// The result depends only on alphabetSize. An alphabet of one symbol (or
// less) has no breakpoints.
func Breakpoints(alphabetSize int) []float64 {
	if alphabetSize <= 1 {
		return []float64{}
	}

	breakpoints := make([]float64, alphabetSize-1)
	for i := 1; i < alphabetSize; i++ {
		p := float64(i) / float64(alphabetSize)
		breakpoints[i-1] = distuv.UnitNormal.Quantile(p)
	}
	return breakpoints
}
