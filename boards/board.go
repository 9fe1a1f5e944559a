package boards

import (
	"strconv"

	"envmon-go/errcode"
)

// Board describes what the MCU offers (GPIO ranges, PWM-capable pins).
// It must not include wiring choices (pins) or operating parameters (thresholds).
type Board struct {
	Name                   string
	DigitalMin, DigitalMax int
	// Analog channels A0..AnalogMax share the digital numbering from AnalogBase.
	AnalogMax  int
	AnalogBase int
	ADCBits    int
	PWM        []int
}

// Kind selects the numbering namespace of a Pin.
type Kind uint8

const (
	Digital Kind = iota
	Analog
)

// Pin is one header position in either namespace.
type Pin struct {
	Kind Kind `json:"kind" yaml:"kind"`
	N    int  `json:"n" yaml:"n"`
}

func D(n int) Pin { return Pin{Kind: Digital, N: n} }
func A(n int) Pin { return Pin{Kind: Analog, N: n} }

func (p Pin) String() string {
	if p.Kind == Analog {
		return "A" + strconv.Itoa(p.N)
	}
	return "D" + strconv.Itoa(p.N)
}

// Has reports whether p exists on the board.
func (b Board) Has(p Pin) bool {
	switch p.Kind {
	case Analog:
		return p.N >= 0 && p.N <= b.AnalogMax
	default:
		return p.N >= b.DigitalMin && p.N <= b.DigitalMax
	}
}

// Digital resolves p to the physical digital number. Analog channels alias
// digital pins, so two roles on A0 and D54 collide on a Mega.
func (b Board) Digital(p Pin) (int, bool) {
	if !b.Has(p) {
		return 0, false
	}
	if p.Kind == Analog {
		return b.AnalogBase + p.N, true
	}
	return p.N, true
}

// PWMCapable reports whether p can drive a hardware PWM output.
func (b Board) PWMCapable(p Pin) bool {
	n, ok := b.Digital(p)
	if !ok {
		return false
	}
	for _, q := range b.PWM {
		if q == n {
			return true
		}
	}
	return false
}

// ADCMax is the full-scale raw reading of the board's ADC.
func (b Board) ADCMax() int { return 1<<b.ADCBits - 1 }

var known = map[string]Board{
	Mega2560.Name: Mega2560,
}

// ByName looks up a known board descriptor.
func ByName(name string) (Board, error) {
	b, ok := known[name]
	if !ok {
		return Board{}, &errcode.E{C: errcode.UnknownBoard, Op: "boards.ByName", Msg: name}
	}
	return b, nil
}

// ParsePin accepts "D22", "A11" or a bare digital number ("22").
func ParsePin(s string) (Pin, error) {
	if s == "" {
		return Pin{}, &errcode.E{C: errcode.InvalidParams, Op: "boards.ParsePin", Msg: "empty pin"}
	}
	k := Digital
	switch s[0] {
	case 'A', 'a':
		k, s = Analog, s[1:]
	case 'D', 'd':
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Pin{}, &errcode.E{C: errcode.InvalidParams, Op: "boards.ParsePin", Msg: "bad pin " + strconv.Quote(s), Err: err}
	}
	return Pin{Kind: k, N: n}, nil
}
