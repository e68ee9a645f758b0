package timeseries

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadText(t *testing.T) {
	input := "1 2.5\t-3\n\n4e2\n  5  \n"

	series, err := LoadText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to load text: %v", err)
	}

	expected := []float64{1, 2.5, -3, 400, 5}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadTextStopsAtBadToken(t *testing.T) {
	series, err := LoadText(strings.NewReader("1 2 3 oops 4 5"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected a ParseError, got %v", err)
	}
	if perr.Token != "oops" || perr.Index != 3 {
		t.Errorf("Unexpected parse error: %+v", perr)
	}
	if series == nil || series.Len() != 3 {
		t.Fatalf("Expected the 3 values before the bad token, got %v", series)
	}

	t.Logf("Parse error: %v", err)
}

func TestLoadTextNumericPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []float64
		rest     string
	}{
		{"trailing letters", "1 2 1.5abc 4", []float64{1, 2, 1.5}, "abc"},
		{"dangling exponent", "7 1e", []float64{7, 1}, "e"},
		{"second sign", "-2-3 9", []float64{-2}, "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := LoadText(strings.NewReader(tt.input))

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected a ParseError, got %v", err)
			}
			if perr.Token != tt.rest || perr.Index != len(tt.expected) {
				t.Errorf("Unexpected parse error: %+v", perr)
			}
			if series.Len() != len(tt.expected) {
				t.Fatalf("Expected %d values, got %v", len(tt.expected), series.Values)
			}
			for i, v := range tt.expected {
				if series.Values[i] != v {
					t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
				}
			}
		})
	}
}

func TestLoadTextLongTokens(t *testing.T) {
	long := "1." + strings.Repeat("0", 100*1024)
	series, err := LoadText(strings.NewReader("5 " + long + " 6"))
	if err != nil {
		t.Fatalf("Failed to load a 100 KiB token: %v", err)
	}
	if series.Len() != 3 || series.Values[2] != 6 {
		t.Errorf("Unexpected values: %v", series.Values)
	}

	tooLong := strings.Repeat("9", maxTokenSize+1)
	series, err = LoadText(strings.NewReader("1 2 " + tooLong))
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("Expected bufio.ErrTooLong, got %v", err)
	}
	if series == nil || series.Len() != 2 {
		t.Errorf("Expected the 2 values before the oversized token, got %v", series)
	}
}

func TestLoadTextEmpty(t *testing.T) {
	_, err := LoadText(strings.NewReader(" \n\t\n"))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestLoadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.txt")
	if err := os.WriteFile(path, []byte("10\n20\n30\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	series, err := LoadTextFile(path)
	if err != nil {
		t.Fatalf("Failed to load file: %v", err)
	}
	if series.Len() != 3 || series.Values[2] != 30 {
		t.Errorf("Unexpected values: %v", series.Values)
	}
	if series.Name != path {
		t.Errorf("Expected name %q, got %q", path, series.Name)
	}

	if _, err := LoadTextFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
