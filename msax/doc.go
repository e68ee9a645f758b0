// Package msax converts a real-valued time series into a single symbolic word.
//
// MSAX is a variant of SAX (Symbolic Aggregate approXimation, Lin et al. 2003)
// that differs in two ways:
//   - Each point is z-normalized against a sliding window of neighbouring
//     points rather than normalizing every subsequence on its own.
//   - Because the whole series is normalized, exactly one word is produced
//     for the entire input.
//
// # Pipeline
//
// The encoding runs four stages, each a plain function that can be called
// on its own:
//
//	normalized := msax.Normalize(values, windowSize) // sliding window z-scores
//	aggregated := msax.PAA(normalized, frameSize)    // frame means
//	breakpoints := msax.Breakpoints(alphabetSize)    // N(0,1) quantiles
//	symbols := msax.Discretize(aggregated, breakpoints)
//
// # Basic Usage
//
//	params := msax.DefaultParams() // window 100, alphabet 8, frame 10
//	symbols, err := msax.Run(values, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msax.Word(symbols)) // e.g. "cdeffedcb"
//
// Use Transform to keep the intermediate stages:
//
//	result, _ := msax.Transform(values, params)
//	// result.Normalized, result.Aggregated, result.Breakpoints, result.Symbols
//
// # Window Boundaries
//
// Normalize primes its window with the first windowSize points. The leading
// windowSize/2 points are scored against that first window, interior points
// against a window lagging (windowSize+1)/2 points behind the newest value,
// and the trailing (windowSize+1)/2 points against the last window. The
// edges are therefore not centered.
//
// # Degenerate Windows
//
// A window with zero variance yields non-finite z-scores. They are not
// treated as errors: they propagate through PAA, and Discretize assigns NaN
// the highest symbol, alphabetSize-1.
package msax
