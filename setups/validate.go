package setups

import (
	"errors"
	"strconv"

	"envmon-go/boards"
	"envmon-go/errcode"
)

// Issue is one validation finding.
type Issue struct {
	Code  errcode.Code
	Field string
	Msg   string
}

func (i Issue) Err() error {
	return &errcode.E{C: i.Code, Op: "validate " + i.Field, Msg: i.Msg}
}

// Issues checks the wiring against the board and the thresholds against the
// limits. Nothing is corrected; every problem is reported.
func (p Profile) Issues() []Issue {
	var out []Issue
	add := func(c errcode.Code, field, msg string) {
		out = append(out, Issue{Code: c, Field: field, Msg: msg})
	}

	if p.Board.Name == "" {
		add(errcode.UnknownBoard, "board", "profile has no board")
		return out
	}

	owner := make(map[int]string)
	for _, r := range p.Pins.Roles() {
		pin := *r.Pin
		n, ok := p.Board.Digital(pin)
		if !ok {
			add(errcode.UnknownPin, r.Name, pin.String()+" not on "+p.Board.Name)
			continue
		}
		if prev, taken := owner[n]; taken {
			add(errcode.PinInUse, r.Name, prev+" and "+r.Name+" share pin "+strconv.Itoa(n))
		} else {
			owner[n] = r.Name
		}
		if r.NeedsPWM && !p.Board.PWMCapable(pin) {
			add(errcode.Unsupported, r.Name, pin.String()+" has no PWM")
		}
		if r.NeedsADC && pin.Kind != boards.Analog {
			add(errcode.Unsupported, r.Name, pin.String()+" is not an analog input")
		}
	}

	t, l := p.Thresholds, p.Limits
	if t.TempLow >= t.TempHigh {
		add(errcode.InvalidThreshold, "temp", "low "+strconv.Itoa(t.TempLow)+" >= high "+strconv.Itoa(t.TempHigh))
	}
	if t.LuzLow >= t.LuzHigh {
		add(errcode.InvalidThreshold, "luz", "low "+strconv.Itoa(t.LuzLow)+" >= high "+strconv.Itoa(t.LuzHigh))
	}

	if l.MaxTemp <= 0 {
		add(errcode.OutOfRange, "max_temp", "must be positive")
	} else {
		for _, f := range []struct {
			name string
			v    int
		}{{"temp_high", t.TempHigh}, {"temp_low", t.TempLow}, {"test_temp", l.TestTemp}} {
			if f.v > l.MaxTemp || f.v < -l.MaxTemp {
				add(errcode.OutOfRange, f.name, strconv.Itoa(f.v)+" beyond ±"+strconv.Itoa(l.MaxTemp))
			}
		}
	}

	if adc := p.Board.ADCMax(); l.MaxLight <= 0 || l.MaxLight > adc {
		add(errcode.OutOfRange, "max_light", strconv.Itoa(l.MaxLight)+" outside 1.."+strconv.Itoa(adc))
	} else {
		for _, f := range []struct {
			name string
			v    int
		}{{"luz_high", t.LuzHigh}, {"luz_low", t.LuzLow}} {
			if f.v > l.MaxLight || f.v < 0 {
				add(errcode.OutOfRange, f.name, strconv.Itoa(f.v)+" outside 0.."+strconv.Itoa(l.MaxLight))
			}
		}
	}
	return out
}

// Validate joins every issue into one error, or returns nil.
func (p Profile) Validate() error {
	is := p.Issues()
	if len(is) == 0 {
		return nil
	}
	errs := make([]error, len(is))
	for i, x := range is {
		errs[i] = x.Err()
	}
	return errors.Join(errs...)
}
