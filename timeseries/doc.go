// Package timeseries provides the series container and input readers.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading Whitespace Separated Values
//
// Read numbers separated by spaces, tabs or newlines:
//
//	series, err := timeseries.LoadTextFile("data.txt")
//
//	// Or from any reader, such as standard input
//	series, err := timeseries.LoadText(os.Stdin)
//
// Reading stops at the first token that is not a number. The values read up
// to that point are still returned, together with a *ParseError:
//
//	series, err := timeseries.LoadText(r)
//	var perr *timeseries.ParseError
//	if errors.As(err, &perr) {
//	    // series holds the perr.Index values before the bad token
//	}
//
// # Loading from CSV
//
// Load one column of a CSV file:
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    ValueColumn: "value",
//	    HasHeader:   true,
//	    Delimiter:   ';',
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
package timeseries
