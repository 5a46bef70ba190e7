package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/funvibe/funbit/pkg/funbit"
)

// Formatter renders values for display under the active interpretation
// modes. Formatting never changes a value's identity: base and complex
// modes affect only the text produced here.
type Formatter struct {
	Angle      AngleMode
	Base       BaseMode
	Complex    ComplexMode
	Abbreviate bool // scientific notation for large decimal magnitudes
}

// NewFormatter creates a formatter for the given mode combination
func NewFormatter(modes ModeState) *Formatter {
	return &Formatter{
		Angle:   modes.Angle,
		Base:    modes.Base,
		Complex: modes.Complex,
	}
}

// Format renders a value under the formatter's modes
func (f *Formatter) Format(v Value) string {
	if v.IsComplex() {
		return f.formatComplex(v)
	}
	return f.formatReal(v.Re())
}

func (f *Formatter) formatReal(r float64) string {
	switch f.Base {
	case BaseHexadecimal:
		if isDisplayableInt(r) {
			return formatHexInt(int64(r))
		}
		// Fractional values have no hex rendering; annotate the integer part
		return fmt.Sprintf("%s (hex: %s)", formatDecimal(r, f.Abbreviate), formatHexInt(int64(r)))
	case BaseBinary:
		if isDisplayableInt(r) {
			return formatBinaryInt(int64(r))
		}
		return fmt.Sprintf("%s (bin: %s)", formatDecimal(r, f.Abbreviate), formatBinaryInt(int64(r)))
	default:
		return formatDecimal(r, f.Abbreviate)
	}
}

func (f *Formatter) formatComplex(v Value) string {
	if f.Complex == ComplexPolar {
		phase := v.Phase()
		unit := "rad"
		if f.Angle == AngleDegrees {
			phase = phase * 180 / math.Pi
			unit = "°"
		}
		return fmt.Sprintf("%s ∠ %s%s", f.formatReal(v.Magnitude()), f.formatReal(phase), unit)
	}

	im := v.Im()
	if im == 0 {
		// drop the sign of a negative zero so it never renders as "+ -0i"
		im = 0
	}
	if im >= 0 {
		return fmt.Sprintf("%s + %si", f.formatReal(v.Re()), f.formatReal(im))
	}
	return fmt.Sprintf("%s - %si", f.formatReal(v.Re()), f.formatReal(-im))
}

// formatDecimal renders a real scalar in base ten
func formatDecimal(r float64, abbreviate bool) string {
	if abbreviate && math.Abs(r) >= 1e6 {
		return strconv.FormatFloat(r, 'e', 3, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// isDisplayableInt reports whether r can be rendered as an integer in a
// non-decimal radix
func isDisplayableInt(r float64) bool {
	return r == math.Trunc(r) && math.Abs(r) <= float64(math.MaxInt64)
}

func formatHexInt(n int64) string {
	if n < 0 {
		return fmt.Sprintf("-0x%X", -n)
	}
	return fmt.Sprintf("0x%X", n)
}

// formatBinaryInt renders an integer as a 0b-prefixed bit run. The bits are
// produced through funbit so the rendering shares one bit-extraction path
// with the rest of the bitstring tooling.
func formatBinaryInt(n int64) string {
	sign := ""
	magnitude := n
	if n < 0 {
		sign = "-"
		magnitude = -n
	}
	if magnitude == 0 {
		return "0b0"
	}

	data, err := funbit.IntToBits(magnitude, 64, false)
	if err != nil {
		return sign + "0b" + strconv.FormatInt(magnitude, 2)
	}

	// Bit j of the value lives at data[j/8], position j%8; walk down from
	// the high bit and start emitting at the first one
	var bits strings.Builder
	seen := false
	for j := 63; j >= 0; j-- {
		bit := (data[j/8] >> (j % 8)) & 1
		if bit == 1 {
			seen = true
		}
		if seen {
			bits.WriteByte('0' + bit)
		}
	}

	return sign + "0b" + bits.String()
}
