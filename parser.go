package timespan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Parse tokenizes a duration string into its fragment list. The input
// must be consumed in full: either a single bare number, interpreted as
// seconds, or one or more <number><unit> fragments. The two forms never
// mix; once a unit word appears, every number needs one. Whitespace is
// permitted around numbers and fragments but never required.
func Parse(input string) (List, error) {
	// Bare-number form: the entire input is one number with no unit.
	i := skipSpace(input, 0)
	if end, ok := scanNumber(input, i); ok && skipSpace(input, end) == len(input) {
		secs, err := parseFloat(input[i:end])
		if err != nil {
			return nil, &ParseError{Input: input, Pos: i, Msg: "malformed number"}
		}
		return List{{Unit: Second, Value: secs}}, nil
	}
	if i == len(input) {
		return nil, &ParseError{Input: input, Pos: i, Msg: "empty input"}
	}
	return parseFragments(input, i)
}

func parseFragments(input string, i int) (List, error) {
	var frags List
	for i < len(input) {
		numStart := i
		numEnd, ok := scanNumber(input, i)
		if !ok {
			return nil, &ParseError{Input: input, Pos: i, Msg: "expected a number"}
		}
		value, err := parseFloat(input[numStart:numEnd])
		if err != nil {
			return nil, &ParseError{Input: input, Pos: numStart, Msg: "malformed number"}
		}

		i = skipSpace(input, numEnd)
		wordEnd := scanWord(input, i)
		if wordEnd == i {
			return nil, &ParseError{Input: input, Pos: i, Msg: "expected a unit"}
		}
		unit, ok := lookupUnit(input[i:wordEnd])
		if !ok {
			return nil, &ParseError{
				Input: input,
				Pos:   i,
				Msg:   fmt.Sprintf("unknown unit %q", input[i:wordEnd]),
			}
		}

		frag := Fragment{Unit: unit, Value: value}
		if unit == Nanosecond {
			// The nanosecond fragment is exact: the float count must fit
			// in an int64 before truncation.
			if value < math.MinInt64 || value >= math.MaxInt64 {
				return nil, &ParseError{Input: input, Pos: numStart, Msg: "nanosecond count out of range"}
			}
			frag = Fragment{Unit: Nanosecond, Nanos: int64(value)}
		}
		frags = append(frags, frag)

		i = skipSpace(input, wordEnd)
	}
	return frags, nil
}

// parseFloat accepts out-of-range literals as ±Inf so the conversion
// stage can report them as overflow rather than a grammar error.
func parseFloat(lit string) (float64, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// scanNumber consumes an optional sign, integer digits, and an optional
// fractional part, returning the end offset. The decimal point is taken
// only when a digit follows it, at least one digit must be present
// overall, and exponent notation is not part of the grammar.
func scanNumber(s string, i int) (end int, ok bool) {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	return i, true
}

// scanWord consumes a run of unit-word characters: ASCII letters plus
// the micro sign.
func scanWord(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isUnitRune(r) {
			break
		}
		i += size
	}
	return i
}

func isUnitRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == 'µ'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}
