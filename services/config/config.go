package config

import (
	"envmon-go/bus"
	"envmon-go/setups"
)

const configPrefix = "config"

// Keys published under config/<key>, all retained.
const (
	KeyBoard      = "board"
	KeyPins       = "pins"
	KeyThresholds = "thresholds"
	KeyLimits     = "limits"
	KeyHAL        = "hal"
)

// Topic returns the retained topic for key.
func Topic(key string) bus.Topic { return bus.T(configPrefix, key) }

// ConfigService publishes one profile as retained configuration so other
// services can pick it up whenever they subscribe.
type ConfigService struct {
	Profile setups.Profile
}

func NewConfigService(p setups.Profile) *ConfigService {
	return &ConfigService{Profile: p}
}

// Pins renders the wiring as role name to pin label ("D22", "A11").
func Pins(p setups.Profile) map[string]string {
	roles := p.Pins.Roles()
	out := make(map[string]string, len(roles))
	for _, r := range roles {
		out[r.Name] = r.Pin.String()
	}
	return out
}

// Publish validates the profile and, if it is sound, publishes every key.
// An invalid profile publishes nothing.
func (s *ConfigService) Publish(conn *bus.Connection) error {
	p := s.Profile
	if err := p.Validate(); err != nil {
		return err
	}
	for _, kv := range []struct {
		key string
		val any
	}{
		{KeyBoard, p.Board.Name},
		{KeyPins, Pins(p)},
		{KeyThresholds, p.Thresholds},
		{KeyLimits, p.Limits},
		{KeyHAL, p.HALConfig()},
	} {
		conn.Publish(conn.NewMessage(Topic(kv.key), kv.val, true))
	}
	return nil
}
