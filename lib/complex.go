package lib

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Divisors whose squared magnitude falls under this are treated as zero.
const zeroTolerance = 1e-9

const (
	displayPrecision = 10
	displayDigits    = 14
)

// Complex is an immutable a + bi value. Every operation returns a new value.
type Complex struct {
	Re float64
	Im float64
}

func NewComplex(re float64, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{Re: re}
}

func (a Complex) Sum(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Complex) Subtract(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Multiply computes (ac - bd) + (ad + bc)i.
func (a Complex) Multiply(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

func (a Complex) Conjugate() Complex {
	return Complex{Re: a.Re, Im: -a.Im}
}

// Divide multiplies a by the conjugate of b and scales by |b|^2. Fails with
// ErrDivisionByZero when |b|^2 is within zeroTolerance of zero.
func (a Complex) Divide(b Complex) (Complex, error) {
	denominator := b.Re*b.Re + b.Im*b.Im
	if math.Abs(denominator) < zeroTolerance {
		return Complex{}, ErrDivisionByZero
	}

	numerator := a.Multiply(b.Conjugate())
	return Complex{Re: numerator.Re / denominator, Im: numerator.Im / denominator}, nil
}

func (a Complex) Magnitude() float64 {
	return math.Sqrt(a.Re*a.Re + a.Im*a.Im)
}

// Phase is the angle in radians, in (-pi, pi].
func (a Complex) Phase() float64 {
	return math.Atan2(a.Im, a.Re)
}

// Power raises a to a real exponent through the polar form (De Moivre).
// Invalid combinations yield NaN components rather than an error.
func (a Complex) Power(exponent float64) Complex {
	magnitude := math.Pow(a.Magnitude(), exponent)
	phase := a.Phase() * exponent
	return Complex{
		Re: magnitude * math.Cos(phase),
		Im: magnitude * math.Sin(phase),
	}
}

// NthRoot returns the principal n-th root only, i.e. a^(1/n).
func (a Complex) NthRoot(n int) (Complex, error) {
	if n <= 0 {
		return Complex{}, fmt.Errorf("%w: root index must be a positive integer, got %d", ErrInvalidArgument, n)
	}
	return a.Power(1.0 / float64(n)), nil
}

func (a Complex) Equal(b Complex) bool {
	return a.Re == b.Re && a.Im == b.Im
}

// ApproxEqual compares both components within tol.
func (a Complex) ApproxEqual(b Complex, tol float64) bool {
	return math.Abs(a.Re-b.Re) <= tol && math.Abs(a.Im-b.Im) <= tol
}

// String renders "5", "7i", "-i", "3 - 4i", "1.5 + i". Components are rounded
// to 10 decimal places first so representation noise (1e-16) never shows.
func (a Complex) String() string {
	r := roundTo(a.Re, displayPrecision)
	i := roundTo(a.Im, displayPrecision)

	rStr := formatFloat(r)
	iAbsStr := formatFloat(math.Abs(i))

	if math.Abs(i) < zeroTolerance {
		return rStr
	}

	if math.Abs(r) < zeroTolerance {
		if iAbsStr == "1" {
			if i < 0 {
				return "-i"
			}
			return "i"
		}
		return formatFloat(i) + "i"
	}

	if i < 0 {
		if iAbsStr == "1" {
			return rStr + " - i"
		}
		return rStr + " - " + iAbsStr + "i"
	}

	if iAbsStr == "1" {
		return rStr + " + i"
	}
	return rStr + " + " + iAbsStr + "i"
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// formatFloat prints at most displayDigits decimals with trailing zeros
// trimmed. Negative zero prints as "0".
func formatFloat(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', displayDigits, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
