package types

// ------------------------
// HAL configuration (supplied on topic "config/hal")
// ------------------------

type HALConfig struct {
	Board   string      `json:"board"`
	Devices []HALDevice `json:"devices"`
}

type HALDevice struct {
	ID     string `json:"id"`     // logical device id
	Type   string `json:"type"`   // e.g. "gpio_led"
	Params any    `json:"params"` // one of the *Params types below
}

// Device types understood by the hardware layer.
const (
	TypePWMOut     = "pwm_out"
	TypeBuzzer     = "buzzer"
	TypeGPIOButton = "gpio_button"
	TypeDHT        = "dht"
	TypeADC        = "adc"
	TypeHD44780    = "hd44780"
)

// Find returns the device with the given id.
func (c HALConfig) Find(id string) (HALDevice, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return HALDevice{}, false
}

// ------------------------
// Measured quantities
// ------------------------

type Kind string

const (
	KindTemperature Kind = "temperature"
	KindHumidity    Kind = "humidity"
	KindLight       Kind = "light"
)
