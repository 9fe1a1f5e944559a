package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"unsupported":       Unsupported,
		"invalid_params":    InvalidParams,
		"unknown_board":     UnknownBoard,
		"unknown_profile":   UnknownProfile,
		"unknown_pin":       UnknownPin,
		"pin_in_use":        PinInUse,
		"invalid_threshold": InvalidThreshold,
		"out_of_range":      OutOfRange,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("Of(nil) != OK")
	}
	if Of(PinInUse) != PinInUse {
		t.Fatal("bare code not extracted")
	}
	e := &E{C: UnknownPin, Op: "validate", Msg: "D4=70"}
	if Of(e) != UnknownPin {
		t.Fatalf("Of(*E) = %q", Of(e))
	}
	if Of(errors.New("x")) != Error {
		t.Fatal("foreign error should map to Error")
	}
}

func TestEFormatsAndMatches(t *testing.T) {
	cause := errors.New("cause")
	e := &E{C: PinInUse, Op: "validate", Msg: "DHT11 and D4 share pin 22", Err: cause}
	if got, want := e.Error(), "validate: pin_in_use: DHT11 and D4 share pin 22"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, PinInUse) {
		t.Fatal("errors.Is(e, PinInUse) = false")
	}
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is(e, cause) = false")
	}
	joined := errors.Join(&E{C: OutOfRange}, e)
	if !errors.Is(joined, PinInUse) || !errors.Is(joined, OutOfRange) {
		t.Fatal("joined error lost a code")
	}
}
