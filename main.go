package main

import (
	"time"

	"envmon-go/bus"
	"envmon-go/errcode"
	"envmon-go/hw"
	"envmon-go/services/config"
	"envmon-go/setups"
)

func main() {
	// Allow USB serial to settle before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	p, err := setups.Selected()
	if err != nil {
		println("profile:", err.Error())
		return
	}
	println("profile", p.Name, "on", p.Board.Name)

	b := bus.NewBus(8)
	cfgConn := b.NewConnection("config")
	if err := config.NewConfigService(p).Publish(cfgConn); err != nil {
		// One line per issue; nothing is bound on a bad profile.
		for _, is := range p.Issues() {
			println("  ", string(is.Code), is.Field, is.Msg)
		}
		halt()
	}

	if _, err := hw.Bind(p); err != nil {
		if errcode.Of(err) == errcode.Unsupported {
			println("no hardware on this build")
			return
		}
		println("bind:", err.Error())
		halt()
	}
	println("ready")

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat")
	}
}

// halt parks the MCU so the console stays readable.
func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
