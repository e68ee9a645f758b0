// Package gomsax provides MSAX, a symbolic representation of time series.
//
// MSAX is a modified SAX (Symbolic Aggregate approXimation) that normalizes
// each point against a sliding window of its neighbours and then encodes the
// whole series as a single word over a small alphabet. The word is suitable
// for indexing, pattern matching or compressing time series data.
//
// # Features
//
//   - Sliding-window z-normalization with a rolling mean and variance
//   - Piecewise Aggregate Approximation (PAA)
//   - Equiprobable breakpoints from the standard normal distribution
//   - Discretization into alphabet symbols rendered as letters
//   - Readers for whitespace separated text and CSV columns
//   - A command-line tool, cmd/msax
//
// # Quick Start
//
//	series, _ := timeseries.LoadTextFile("data.txt")
//	symbols, err := msax.Run(series.Values, msax.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msax.Word(symbols))
//
// # Packages
//
// The library is organized into the following packages:
//
//   - msax: The encoding pipeline
//   - timeseries: Series container and input readers
//
// # References
//
//   - Lin, J., Keogh, E., Lonardi, S., & Chiu, B. (2003). A symbolic
//     representation of time series, with implications for streaming
//     algorithms. DMKD '03.
package gomsax
