//go:build arduino_mega2560

package hw

import (
	"machine"

	"tinygo.org/x/drivers/buzzer"
	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/hd44780"

	"envmon-go/errcode"
	"envmon-go/setups"
	"envmon-go/types"
)

// header maps Arduino numbering (D0..D53, then A0..A15 as 54..69) onto
// TinyGo's port-based pins.
var header = [...]machine.Pin{
	machine.D0, machine.D1, machine.D2, machine.D3, machine.D4, machine.D5, machine.D6, machine.D7, machine.D8, machine.D9, machine.D10, machine.D11, machine.D12, machine.D13, machine.D14, machine.D15, machine.D16, machine.D17, machine.D18, machine.D19, machine.D20, machine.D21, machine.D22, machine.D23, machine.D24, machine.D25, machine.D26, machine.D27, machine.D28, machine.D29, machine.D30, machine.D31, machine.D32, machine.D33, machine.D34, machine.D35, machine.D36, machine.D37, machine.D38, machine.D39, machine.D40, machine.D41, machine.D42, machine.D43, machine.D44, machine.D45, machine.D46, machine.D47, machine.D48, machine.D49, machine.D50, machine.D51, machine.D52, machine.D53,
	machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3, machine.ADC4, machine.ADC5, machine.ADC6, machine.ADC7, machine.ADC8, machine.ADC9, machine.ADC10, machine.ADC11, machine.ADC12, machine.ADC13, machine.ADC14, machine.ADC15,
}

func pin(n int) machine.Pin {
	if n < 0 || n >= len(header) {
		return machine.NoPin
	}
	return header[n]
}

// Hardware holds the configured drivers for one profile.
type Hardware struct {
	Profile setups.Profile

	Buzzer    buzzer.Device
	RGB       [3]machine.Pin
	LCD       hd44780.Device
	DHT       dht.Device
	Photocell machine.ADC
	Button    machine.Pin
	// ButtonActiveLow is set when a press pulls the pin to ground.
	ButtonActiveLow bool
}

// ButtonPressed samples the button once.
func (h *Hardware) ButtonPressed() bool {
	return pressed(h.Button.Get(), h.ButtonActiveLow)
}

// Bind configures every pin named by p and constructs its drivers.
func Bind(p setups.Profile) (*Hardware, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	cfg := p.HALConfig()
	h := &Hardware{Profile: p}

	for _, d := range cfg.Devices {
		switch params := d.Params.(type) {
		case types.BuzzerParams:
			bz := pin(params.Pin)
			bz.Configure(machine.PinConfig{Mode: machine.PinOutput})
			h.Buzzer = buzzer.New(bz)

		case types.PWMParams:
			// Parked low (dark); no timer PWM is configured here.
			led := pin(params.Pin)
			led.Configure(machine.PinConfig{Mode: machine.PinOutput})
			led.Low()
			switch d.ID {
			case "led-red":
				h.RGB[0] = led
			case "led-green":
				h.RGB[1] = led
			case "led-blue":
				h.RGB[2] = led
			}

		case types.LCDParams:
			data := []machine.Pin{
				pin(params.Data[0]), pin(params.Data[1]),
				pin(params.Data[2]), pin(params.Data[3]),
			}
			rw := machine.NoPin
			if params.RWPin >= 0 {
				rw = pin(params.RWPin)
			}
			lcd, err := hd44780.NewGPIO4Bit(data, pin(params.EN), pin(params.RS), rw)
			if err != nil {
				return nil, &errcode.E{C: errcode.Error, Op: "hw.Bind", Msg: d.ID, Err: err}
			}
			if err := lcd.Configure(hd44780.Config{Width: int16(params.Cols), Height: int16(params.Rows)}); err != nil {
				return nil, &errcode.E{C: errcode.Error, Op: "hw.Bind", Msg: d.ID, Err: err}
			}
			h.LCD = lcd

		case types.DHTParams:
			h.DHT = dht.New(pin(params.Pin), dht.DHT11)

		case types.ADCParams:
			machine.InitADC()
			h.Photocell = machine.ADC{Pin: pin(params.Pin)}
			h.Photocell.Configure(machine.ADCConfig{})

		case types.ButtonParams:
			mode := machine.PinInput
			if params.PullUp {
				mode = machine.PinInputPullup
			}
			h.Button = pin(params.Pin)
			h.Button.Configure(machine.PinConfig{Mode: mode})
			h.ButtonActiveLow = params.ActiveLow

		default:
			return nil, &errcode.E{C: errcode.Unsupported, Op: "hw.Bind", Msg: d.ID}
		}
	}
	return h, nil
}
