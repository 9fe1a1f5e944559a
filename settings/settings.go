// Package settings holds the monitor's compile-time configuration:
// alarm thresholds, the Arduino Mega pin map and reading bounds.
package settings

// Default alarm thresholds.
const (
	DefaultTempHigh = 29  // °C
	DefaultTempLow  = 26  // °C
	DefaultLuzHigh  = 800 // raw ADC counts
	DefaultLuzLow   = 300 // raw ADC counts
)

// Pin map (Arduino Mega 2560 numbering).
const (
	PinBuzzerPasivo = 12 // passive buzzer

	PinLEDRed   = 4
	PinLEDGreen = 5
	PinLEDBlue  = 6

	// HD44780 in 4-bit mode.
	PinRS = 52
	PinEN = 50
	PinD4 = 48
	PinD5 = 46
	PinD6 = 44
	PinD7 = 42

	PinDHT11     = 22
	PinPhotocell = 11 // analog channel A11
	PinBoton     = 2
)

// Reading bounds.
const (
	TestTemp = 15
	MaxTemp  = 125  // DHT-class sensors never report above this
	MaxLight = 1023 // 10-bit ADC full scale
)

// NamedPin pairs a pin constant with its wiring role.
type NamedPin struct {
	Name string
	Pin  int
}

// Pins lists every pin constant in declaration order.
func Pins() []NamedPin {
	return []NamedPin{
		{"BUZZER_PASIVO", PinBuzzerPasivo},
		{"LED_RED", PinLEDRed},
		{"LED_GREEN", PinLEDGreen},
		{"LED_BLUE", PinLEDBlue},
		{"RS", PinRS},
		{"EN", PinEN},
		{"D4", PinD4},
		{"D5", PinD5},
		{"D6", PinD6},
		{"D7", PinD7},
		{"DHT11", PinDHT11},
		{"PHOTOCELL", PinPhotocell},
		{"BOTON", PinBoton},
	}
}
