package setups

import (
	"envmon-go/boards"
	"envmon-go/types"
)

// LCD geometry and PWM carrier used by the Mega build.
const (
	lcdCols   = 16
	lcdRows   = 2
	ledPWMHz  = 490 // Arduino analogWrite carrier on most Mega timers
	ledPWMTop = 255
)

// HALConfig lists the logical devices for the hardware layer to instantiate.
// Callers are expected to Validate first; unknown pins resolve to -1.
func (p Profile) HALConfig() types.HALConfig {
	dig := func(pin boards.Pin) int {
		n, ok := p.Board.Digital(pin)
		if !ok {
			return -1
		}
		return n
	}
	led := func(id string, pin boards.Pin) types.HALDevice {
		return types.HALDevice{ID: id, Type: types.TypePWMOut, Params: types.PWMParams{
			Pin: dig(pin), FreqHz: ledPWMHz, Top: ledPWMTop,
		}}
	}
	m := p.Pins

	return types.HALConfig{
		Board: p.Board.Name,
		Devices: []types.HALDevice{
			{ID: "buzzer", Type: types.TypeBuzzer, Params: types.BuzzerParams{Pin: dig(m.Buzzer)}},

			// Common-cathode RGB LED, one PWM channel per colour.
			led("led-red", m.LEDRed),
			led("led-green", m.LEDGreen),
			led("led-blue", m.LEDBlue),

			{ID: "lcd", Type: types.TypeHD44780, Params: types.LCDParams{
				RS:    dig(m.LCDRS),
				EN:    dig(m.LCDEN),
				Data:  [4]int{dig(m.LCDD4), dig(m.LCDD5), dig(m.LCDD6), dig(m.LCDD7)},
				Cols:  lcdCols,
				Rows:  lcdRows,
				RWPin: -1,
			}},

			{ID: "dht11", Type: types.TypeDHT, Params: types.DHTParams{Pin: dig(m.DHT11), Model: "dht11"}},
			{ID: "photocell", Type: types.TypeADC, Params: types.ADCParams{
				Pin: dig(m.Photocell), Channel: m.Photocell.N, Bits: p.Board.ADCBits,
			}},

			// Button to ground, internal pull-up.
			{ID: "button", Type: types.TypeGPIOButton, Params: types.ButtonParams{
				Pin: dig(m.Button), PullUp: true, ActiveLow: true,
			}},
		},
	}
}
