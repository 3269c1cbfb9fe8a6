package lib

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComplex turns the text of a COMPLEX_NUMBER token back into a value.
// Accepted shapes are the ones the scanner produces: "5", ".5", "-3.25",
// "i", "-i", "2i", "3+4i", "5.5-2i", "3-.5i". A fused pair without the
// trailing 'i' ("3+4") is rejected.
func ParseComplex(text string) (Complex, error) {
	if text == "" {
		return Complex{}, fmt.Errorf("%w: empty text", ErrMalformedLiteral)
	}
	for i, ch := range text {
		if !isDigit(ch) && !strings.ContainsRune(".+-", ch) && !(ch == 'i' && i == len(text)-1) {
			return Complex{}, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedLiteral, ch, text)
		}
	}

	if !strings.HasSuffix(text, "i") {
		if splitIndex(text) > 0 {
			return Complex{}, fmt.Errorf("%w: %q has two parts but no imaginary unit", ErrMalformedLiteral, text)
		}
		re, err := parsePart(text)
		if err != nil {
			return Complex{}, err
		}
		return Real(re), nil
	}

	body := text[:len(text)-1]
	k := splitIndex(body)
	if k <= 0 {
		im, err := parseCoefficient(body)
		if err != nil {
			return Complex{}, err
		}
		return NewComplex(0, im), nil
	}

	re, err := parsePart(body[:k])
	if err != nil {
		return Complex{}, err
	}
	im, err := parseCoefficient(body[k:])
	if err != nil {
		return Complex{}, err
	}
	return NewComplex(re, im), nil
}

// splitIndex finds the sign that separates a real part from an imaginary
// one. A sign at index 0 belongs to the first part; -1 means none.
func splitIndex(s string) int {
	return strings.LastIndexAny(s, "+-")
}

// parseCoefficient handles the imaginary coefficient, where a missing
// magnitude means 1.
func parseCoefficient(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return parsePart(s)
}

func parsePart(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformedLiteral, s)
	}
	return v, nil
}
