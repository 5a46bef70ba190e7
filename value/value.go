package value

import "math"

// Kind tags a Value as real or complex
type Kind int

const (
	KindReal Kind = iota
	KindComplex
)

// Value is an immutable numeric value: either a real scalar or a complex
// scalar stored in rectangular form. A complex value with zero imaginary
// part keeps its Complex tag; collapsing it is a display concern only.
type Value struct {
	kind Kind
	re   float64
	im   float64
}

// Real constructs a real value
func Real(r float64) Value {
	return Value{kind: KindReal, re: r}
}

// Complex constructs a complex value in rectangular form
func Complex(re, im float64) Value {
	return Value{kind: KindComplex, re: re, im: im}
}

// FromPolar constructs a complex value from magnitude and phase (radians).
// Storage stays rectangular; polar exists only at entry/display boundaries.
func FromPolar(magnitude, phase float64) Value {
	return Complex(magnitude*math.Cos(phase), magnitude*math.Sin(phase))
}

// Kind returns the value tag
func (v Value) Kind() Kind {
	return v.kind
}

// IsComplex reports whether the value carries the Complex tag
func (v Value) IsComplex() bool {
	return v.kind == KindComplex
}

// Re returns the real component
func (v Value) Re() float64 {
	return v.re
}

// Im returns the imaginary component (zero for real values)
func (v Value) Im() float64 {
	return v.im
}

// AsReal returns the real scalar and true if the value is representable as
// one: either tagged Real, or Complex with an exactly zero imaginary part.
func (v Value) AsReal() (float64, bool) {
	if v.kind == KindReal || v.im == 0 {
		return v.re, true
	}
	return 0, false
}

// AsComplex returns the value as a complex128, promoting reals
func (v Value) AsComplex() complex128 {
	return complex(v.re, v.im)
}

// Magnitude returns the modulus of the value
func (v Value) Magnitude() float64 {
	return math.Hypot(v.re, v.im)
}

// Phase returns the argument of the value in radians
func (v Value) Phase() float64 {
	return math.Atan2(v.im, v.re)
}

// Negate returns the additive inverse, preserving the tag
func (v Value) Negate() Value {
	return Value{kind: v.kind, re: -v.re, im: -v.im}
}

// IsZero reports whether the value is exactly zero (zero modulus for complex)
func (v Value) IsZero() bool {
	return v.re == 0 && v.im == 0
}

// FromComplex wraps a complex128 as a Value tagged Complex
func FromComplex(c complex128) Value {
	return Complex(real(c), imag(c))
}

// Promote lifts two operands to a common kind: if either is complex, both
// become complex. The returned kind is the kind arithmetic should produce.
func Promote(a, b Value) (complex128, complex128, Kind) {
	kind := KindReal
	if a.IsComplex() || b.IsComplex() {
		kind = KindComplex
	}
	return a.AsComplex(), b.AsComplex(), kind
}

// Tag re-tags a complex128 result with the given kind. Real results keep
// only the real component.
func Tag(c complex128, kind Kind) Value {
	if kind == KindReal {
		return Real(real(c))
	}
	return FromComplex(c)
}
