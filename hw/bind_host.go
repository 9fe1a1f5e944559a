//go:build !arduino_mega2560

package hw

import (
	"envmon-go/errcode"
	"envmon-go/setups"
)

// Hardware is empty off-target; there are no pins to hold.
type Hardware struct {
	Profile setups.Profile
}

// Bind validates p. Host builds have no GPIO, so a valid profile still
// yields errcode.Unsupported.
func Bind(p setups.Profile) (*Hardware, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	return nil, &errcode.E{C: errcode.Unsupported, Op: "hw.Bind", Msg: "no GPIO on host build"}
}
