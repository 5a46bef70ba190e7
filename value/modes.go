package value

// AngleMode selects the unit used by angle-sensitive operators and polar display
type AngleMode int

const (
	AngleRadians AngleMode = iota
	AngleDegrees
)

func (m AngleMode) String() string {
	switch m {
	case AngleDegrees:
		return "DEG"
	default:
		return "RAD"
	}
}

// BaseMode selects the radix used for literal entry and integer display
type BaseMode int

const (
	BaseDecimal BaseMode = iota
	BaseHexadecimal
	BaseBinary
)

func (m BaseMode) String() string {
	switch m {
	case BaseHexadecimal:
		return "HEX"
	case BaseBinary:
		return "BIN"
	default:
		return "DEC"
	}
}

// Radix returns the numeric radix for the base mode
func (m BaseMode) Radix() int {
	switch m {
	case BaseHexadecimal:
		return 16
	case BaseBinary:
		return 2
	default:
		return 10
	}
}

// ComplexMode selects the display convention for complex values
type ComplexMode int

const (
	ComplexRectangular ComplexMode = iota
	ComplexPolar
)

func (m ComplexMode) String() string {
	switch m {
	case ComplexPolar:
		return "POL"
	default:
		return "REC"
	}
}

// NotationMode selects the entry discipline: infix expressions or RPN keystrokes
type NotationMode int

const (
	NotationInfix NotationMode = iota
	NotationRPN
)

func (m NotationMode) String() string {
	switch m {
	case NotationRPN:
		return "RPN"
	default:
		return "INFIX"
	}
}

// ModeState holds the four orthogonal interpretation modes. Any combination is
// valid. It is owned by the session and mutated only by explicit toggles,
// never by evaluation.
type ModeState struct {
	Angle    AngleMode
	Base     BaseMode
	Complex  ComplexMode
	Notation NotationMode
}

// DefaultModes returns the startup mode combination
func DefaultModes() ModeState {
	return ModeState{
		Angle:    AngleRadians,
		Base:     BaseDecimal,
		Complex:  ComplexRectangular,
		Notation: NotationInfix,
	}
}

// ToggleAngle switches between radians and degrees
func (m *ModeState) ToggleAngle() AngleMode {
	if m.Angle == AngleRadians {
		m.Angle = AngleDegrees
	} else {
		m.Angle = AngleRadians
	}
	return m.Angle
}

// CycleBase advances Decimal -> Hexadecimal -> Binary -> Decimal
func (m *ModeState) CycleBase() BaseMode {
	switch m.Base {
	case BaseDecimal:
		m.Base = BaseHexadecimal
	case BaseHexadecimal:
		m.Base = BaseBinary
	default:
		m.Base = BaseDecimal
	}
	return m.Base
}

// ToggleComplex switches between rectangular and polar display
func (m *ModeState) ToggleComplex() ComplexMode {
	if m.Complex == ComplexRectangular {
		m.Complex = ComplexPolar
	} else {
		m.Complex = ComplexRectangular
	}
	return m.Complex
}

// ToggleNotation switches between infix and RPN entry
func (m *ModeState) ToggleNotation() NotationMode {
	if m.Notation == NotationInfix {
		m.Notation = NotationRPN
	} else {
		m.Notation = NotationInfix
	}
	return m.Notation
}

// StatusLine renders the mode combination for the status bar,
// e.g. "angle: RAD base: DEC complex: REC notation: INFIX"
func (m ModeState) StatusLine() string {
	return "angle: " + m.Angle.String() +
		" base: " + m.Base.String() +
		" complex: " + m.Complex.String() +
		" notation: " + m.Notation.String()
}
