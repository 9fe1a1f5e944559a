package setups

import "testing"

func TestBands(t *testing.T) {
	th := ProyectoFinal().Thresholds
	temp := []struct {
		v    int
		want Band
	}{{25, BandLow}, {26, BandNormal}, {28, BandNormal}, {29, BandNormal}, {30, BandHigh}}
	for _, c := range temp {
		if got := th.TempBand(c.v); got != c.want {
			t.Fatalf("TempBand(%d) = %v, want %v", c.v, got, c.want)
		}
	}
	light := []struct {
		v    int
		want Band
	}{{0, BandLow}, {299, BandLow}, {300, BandNormal}, {800, BandNormal}, {801, BandHigh}}
	for _, c := range light {
		if got := th.LightBand(c.v); got != c.want {
			t.Fatalf("LightBand(%d) = %v, want %v", c.v, got, c.want)
		}
	}
	if BandHigh.String() != "high" || BandLow.String() != "low" || BandNormal.String() != "normal" {
		t.Fatal("band names changed")
	}
}

func TestClampAndPercent(t *testing.T) {
	p := ProyectoFinal()
	if p.ClampTemp(200) != 125 || p.ClampTemp(-300) != -125 || p.ClampTemp(22) != 22 {
		t.Fatal("ClampTemp")
	}
	if p.ClampLight(-1) != 0 || p.ClampLight(5000) != 1023 || p.ClampLight(512) != 512 {
		t.Fatal("ClampLight")
	}
	if p.LightPercent(0) != 0 || p.LightPercent(1023) != 100 || p.LightPercent(4000) != 100 {
		t.Fatal("LightPercent bounds")
	}
	if got := p.LightPercent(300); got != 29 {
		t.Fatalf("LightPercent(300) = %d, want 29", got)
	}
}
