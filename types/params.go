package types

// Pins in params are physical digital numbers; analog channels are carried
// separately where the device needs the ADC channel index.

type PWMParams struct {
	Pin       int    `json:"pin"`
	FreqHz    uint64 `json:"freq_hz,omitempty"`
	Top       uint16 `json:"top,omitempty"`
	ActiveLow bool   `json:"active_low"`
	Initial   uint16 `json:"initial"`
}

// BuzzerParams drives a passive buzzer (needs a tone, not a level).
type BuzzerParams struct {
	Pin int `json:"pin"`
}

type ButtonParams struct {
	Pin       int  `json:"pin"`
	PullUp    bool `json:"pull_up"`
	ActiveLow bool `json:"active_low"`
}

// DHTParams selects a DHT-family single-wire sensor.
type DHTParams struct {
	Pin   int    `json:"pin"`
	Model string `json:"model"` // "dht11", "dht22"
}

type ADCParams struct {
	Pin     int `json:"pin"`
	Channel int `json:"channel"` // A<n>
	Bits    int `json:"bits"`
}

// LCDParams wires an HD44780 character display in 4-bit mode.
type LCDParams struct {
	RS    int    `json:"rs"`
	EN    int    `json:"en"`
	Data  [4]int `json:"data"` // D4..D7
	Cols  uint8  `json:"cols"`
	Rows  uint8  `json:"rows"`
	RWPin int    `json:"rw"` // -1 when tied to ground
}
