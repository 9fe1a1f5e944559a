package boards

// Mega2560 is the Arduino Mega 2560 (ATmega2560).
var Mega2560 = Board{
	Name:       "arduino_mega2560",
	DigitalMin: 0,
	DigitalMax: 69, // 54..69 are A0..A15
	AnalogMax:  15,
	AnalogBase: 54,
	ADCBits:    10,
	PWM:        []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 44, 45, 46},
}
