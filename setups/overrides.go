package setups

import (
	"io"

	"gopkg.in/yaml.v3"

	"envmon-go/boards"
	"envmon-go/errcode"
)

// Overrides is a sparse patch over a Profile, read from YAML:
//
//	temp_high: 30
//	luz_low: 250
//	pins:
//	  PHOTOCELL: A3
//	  BOTON: D3
type Overrides struct {
	TempHigh *int `yaml:"temp_high"`
	TempLow  *int `yaml:"temp_low"`
	LuzHigh  *int `yaml:"luz_high"`
	LuzLow   *int `yaml:"luz_low"`

	TestTemp *int `yaml:"test_temp"`
	MaxTemp  *int `yaml:"max_temp"`
	MaxLight *int `yaml:"max_light"`

	// Role name (as listed by PinMap.Roles) to pin ("D22", "A11").
	Pins map[string]string `yaml:"pins"`
}

// ParseOverrides decodes one YAML document. Unknown keys are rejected.
func ParseOverrides(r io.Reader) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if err == io.EOF {
			return Overrides{}, nil
		}
		return Overrides{}, &errcode.E{C: errcode.InvalidParams, Op: "setups.ParseOverrides", Msg: err.Error(), Err: err}
	}
	return o, nil
}

// WithOverrides applies o to a copy of p and validates the result. The patched
// profile is returned even when invalid so tools can report on it.
func (p Profile) WithOverrides(o Overrides) (Profile, error) {
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Thresholds.TempHigh, o.TempHigh)
	set(&p.Thresholds.TempLow, o.TempLow)
	set(&p.Thresholds.LuzHigh, o.LuzHigh)
	set(&p.Thresholds.LuzLow, o.LuzLow)
	set(&p.Limits.TestTemp, o.TestTemp)
	set(&p.Limits.MaxTemp, o.MaxTemp)
	set(&p.Limits.MaxLight, o.MaxLight)

	if len(o.Pins) > 0 {
		roles := make(map[string]*boards.Pin)
		for _, r := range p.Pins.Roles() {
			roles[r.Name] = r.Pin
		}
		for name, s := range o.Pins {
			dst, ok := roles[name]
			if !ok {
				return p, &errcode.E{C: errcode.InvalidParams, Op: "setups.WithOverrides", Msg: "unknown pin role " + name}
			}
			pin, err := boards.ParsePin(s)
			if err != nil {
				return p, err
			}
			*dst = pin
		}
	}
	return p, p.Validate()
}
