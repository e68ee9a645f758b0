package msax

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameter is returned when a size parameter is below 1.
	ErrInvalidParameter = errors.New("msax: parameter must be at least 1")
	// ErrWindowExceedsSeries is returned when the window is longer than the series.
	ErrWindowExceedsSeries = errors.New("msax: window size exceeds series length")
)

// Params holds the encoding parameters.
type Params struct {
	WindowSize   int // Points in the sliding normalization window
	AlphabetSize int // Number of distinct symbols
	FrameSize    int // Points aggregated into one symbol
}

// DefaultParams returns the default parameters: a window of 100 points, an
// alphabet of 8 symbols and 10 points per symbol.
func DefaultParams() Params {
	return Params{
		WindowSize:   100,
		AlphabetSize: 8,
		FrameSize:    10,
	}
}

// Check reports whether every parameter is at least 1.
func (p Params) Check() error {
	switch {
	case p.WindowSize < 1:
		return fmt.Errorf("%w: window size %d", ErrInvalidParameter, p.WindowSize)
	case p.AlphabetSize < 1:
		return fmt.Errorf("%w: alphabet size %d", ErrInvalidParameter, p.AlphabetSize)
	case p.FrameSize < 1:
		return fmt.Errorf("%w: frame size %d", ErrInvalidParameter, p.FrameSize)
	}
	return nil
}

// Validate checks the parameters against a series of n points.
func (p Params) Validate(n int) error {
	if err := p.Check(); err != nil {
		return err
	}
	if p.WindowSize > n {
		return fmt.Errorf("%w: window size %d, series length %d", ErrWindowExceedsSeries, p.WindowSize, n)
	}
	return nil
}

// Result holds the output of every pipeline stage.
type Result struct {
	Params      Params
	Normalized  []float64 // One z-score per input point
	Aggregated  []float64 // One mean per frame
	Breakpoints []float64 // AlphabetSize-1 thresholds
	Symbols     []int     // One symbol per frame
}

// Word renders the symbols as letters.
func (r *Result) Word() string {
	return Word(r.Symbols)
}

// Transform runs the full pipeline and keeps the intermediate stages.
func Transform(values []float64, p Params) (*Result, error) {
	if err := p.Validate(len(values)); err != nil {
		return nil, err
	}

	normalized := Normalize(values, p.WindowSize)
	aggregated := PAA(normalized, p.FrameSize)
	breakpoints := Breakpoints(p.AlphabetSize)

	return &Result{
		Params:      p,
		Normalized:  normalized,
		Aggregated:  aggregated,
		Breakpoints: breakpoints,
		Symbols:     Discretize(aggregated, breakpoints),
	}, nil
}

// Run encodes values and returns one symbol in [0, AlphabetSize) per frame.
func Run(values []float64, p Params) ([]int, error) {
	result, err := Transform(values, p)
	if err != nil {
		return nil, err
	}
	return result.Symbols, nil
}

// Word renders symbol c as the single byte 'a'+c. Alphabets larger than 26
// continue past 'z' into the rest of the byte range.
func Word(symbols []int) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, c := range symbols {
		b.WriteByte(byte('a' + c))
	}
	return b.String()
}
