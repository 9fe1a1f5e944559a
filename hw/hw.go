// Package hw binds a validated profile to real pins and drivers.
package hw

import (
	"tinygo.org/x/drivers"

	"envmon-go/setups"
	"envmon-go/types"
)

// Sensor describes what one input device can measure.
type Sensor struct {
	ID       string
	Kinds    []types.Kind
	Provides drivers.Measurement
}

// Sensors lists the profile's inputs and their measurement kinds.
func Sensors(p setups.Profile) []Sensor {
	var out []Sensor
	for _, d := range p.HALConfig().Devices {
		switch d.Type {
		case types.TypeDHT:
			out = append(out, Sensor{
				ID:       d.ID,
				Kinds:    []types.Kind{types.KindTemperature, types.KindHumidity},
				Provides: drivers.Temperature | drivers.Humidity,
			})
		case types.TypeADC:
			out = append(out, Sensor{
				ID:       d.ID,
				Kinds:    []types.Kind{types.KindLight},
				Provides: drivers.Luminosity,
			})
		}
	}
	return out
}

// check runs before any pin is touched.
func check(p setups.Profile) error {
	return p.Validate()
}

// pressed converts a raw pin level into a press for the given polarity.
func pressed(level, activeLow bool) bool {
	return level != activeLow
}
