// Package setups binds the monitor's wiring and operating parameters to a
// board. A Profile is the complete compile-time configuration of one build.
package setups

import (
	"sort"

	"envmon-go/boards"
	"envmon-go/errcode"
	"envmon-go/settings"
)

// Thresholds are the alarm defaults for temperature (°C) and light (raw ADC).
type Thresholds struct {
	TempHigh int `json:"temp_high"`
	TempLow  int `json:"temp_low"`
	LuzHigh  int `json:"luz_high"`
	LuzLow   int `json:"luz_low"`
}

// Limits bound sensor readings.
type Limits struct {
	TestTemp int `json:"test_temp"` // reference reading for self-test
	MaxTemp  int `json:"max_temp"`
	MaxLight int `json:"max_light"`
}

// PinMap is the wiring of every peripheral.
type PinMap struct {
	Buzzer    boards.Pin
	LEDRed    boards.Pin
	LEDGreen  boards.Pin
	LEDBlue   boards.Pin
	LCDRS     boards.Pin
	LCDEN     boards.Pin
	LCDD4     boards.Pin
	LCDD5     boards.Pin
	LCDD6     boards.Pin
	LCDD7     boards.Pin
	DHT11     boards.Pin
	Photocell boards.Pin
	Button    boards.Pin
}

// Role is one named wiring slot and what it needs from its pin.
type Role struct {
	Name     string
	Pin      *boards.Pin
	NeedsPWM bool
	NeedsADC bool
}

// Roles lists the slots of m in wiring order. Pins are addressable so callers
// can rewrite them by name.
func (m *PinMap) Roles() []Role {
	return []Role{
		{Name: "BUZZER_PASIVO", Pin: &m.Buzzer},
		{Name: "LED_RED", Pin: &m.LEDRed, NeedsPWM: true},
		{Name: "LED_GREEN", Pin: &m.LEDGreen, NeedsPWM: true},
		{Name: "LED_BLUE", Pin: &m.LEDBlue, NeedsPWM: true},
		{Name: "RS", Pin: &m.LCDRS},
		{Name: "EN", Pin: &m.LCDEN},
		{Name: "D4", Pin: &m.LCDD4},
		{Name: "D5", Pin: &m.LCDD5},
		{Name: "D6", Pin: &m.LCDD6},
		{Name: "D7", Pin: &m.LCDD7},
		{Name: "DHT11", Pin: &m.DHT11},
		{Name: "PHOTOCELL", Pin: &m.Photocell, NeedsADC: true},
		{Name: "BOTON", Pin: &m.Button},
	}
}

// Profile is one selectable board configuration.
type Profile struct {
	Name       string
	Board      boards.Board
	Pins       PinMap
	Thresholds Thresholds
	Limits     Limits
}

// ProyectoFinal is the wiring of the Mega-based monitor.
func ProyectoFinal() Profile {
	return Profile{
		Name:  "proyecto_final",
		Board: boards.Mega2560,
		Pins:  pinMapFrom(settings.Pins()),
		Thresholds: Thresholds{
			TempHigh: settings.DefaultTempHigh,
			TempLow:  settings.DefaultTempLow,
			LuzHigh:  settings.DefaultLuzHigh,
			LuzLow:   settings.DefaultLuzLow,
		},
		Limits: Limits{
			TestTemp: settings.TestTemp,
			MaxTemp:  settings.MaxTemp,
			MaxLight: settings.MaxLight,
		},
	}
}

// pinMapFrom fills a PinMap by role name. Analog roles take the number as an
// ADC channel. A role missing from named gets pin -1 so Validate reports it.
func pinMapFrom(named []settings.NamedPin) PinMap {
	byName := make(map[string]int, len(named))
	for _, np := range named {
		byName[np.Name] = np.Pin
	}
	var m PinMap
	for _, r := range m.Roles() {
		n, ok := byName[r.Name]
		if !ok {
			n = -1
		}
		if r.NeedsADC {
			*r.Pin = boards.A(n)
		} else {
			*r.Pin = boards.D(n)
		}
	}
	return m
}

var profiles = map[string]func() Profile{
	"proyecto_final": ProyectoFinal,
}

// SelectedName picks the profile the firmware boots with.
// Override at link time: -ldflags "-X envmon-go/setups.SelectedName=<name>".
var SelectedName = "proyecto_final"

// Selected returns the profile named by SelectedName.
func Selected() (Profile, error) { return ByName(SelectedName) }

// ByName returns a fresh copy of a registered profile.
func ByName(name string) (Profile, error) {
	mk, ok := profiles[name]
	if !ok {
		return Profile{}, &errcode.E{C: errcode.UnknownProfile, Op: "setups.ByName", Msg: name}
	}
	return mk(), nil
}

// Names lists registered profiles, sorted.
func Names() []string {
	out := make([]string, 0, len(profiles))
	for n := range profiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
