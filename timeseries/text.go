package timeseries

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when an input contains no values.
var ErrNoData = errors.New("no valid data found")

// ParseError reports a token that is not a number.
type ParseError struct {
	Token string // The unparsed text
	Index int    // Number of values read before Token
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// maxTokenSize bounds a single whitespace separated token.
const maxTokenSize = 1 << 20

// LoadText reads whitespace or newline separated numbers from r.
//
// Reading stops at the first token that does not parse as a float. A token
// with a numeric prefix, such as "1.5abc", contributes the prefix and stops
// at the first rejected character. In either case the values read so far
// are returned along with a *ParseError. A token longer than 1 MiB stops
// reading with bufio.ErrTooLong, again keeping the values before it.
func LoadText(r io.Reader) (*Series, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var values []float64
	for scanner.Scan() {
		token := scanner.Text()
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			if k, pv, ok := numericPrefix(token); ok {
				values = append(values, pv)
				token = token[k:]
			}
			return New(values), &ParseError{Token: token, Index: len(values), Err: err}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return New(values), err
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return New(values), nil
}

// numericPrefix returns the length and value of the longest decimal prefix
// of token that parses as a float.
func numericPrefix(token string) (int, float64, bool) {
	end := strings.IndexFunc(token, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	})
	if end < 0 {
		end = len(token)
	}
	for k := end; k > 0; k-- {
		if v, err := strconv.ParseFloat(token[:k], 64); err == nil {
			return k, v, true
		}
	}
	return 0, 0, false
}

// LoadTextFile reads whitespace separated numbers from a file.
func LoadTextFile(filename string) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadText(file)
	if series != nil {
		series.Name = filename
	}
	return series, err
}
