package setups

import "envmon-go/x/mathx"

// Band classifies a reading against a threshold pair.
type Band int8

const (
	BandLow Band = iota - 1
	BandNormal
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandHigh:
		return "high"
	default:
		return "normal"
	}
}

func band(v, lo, hi int) Band {
	switch {
	case mathx.Between(v, lo, hi):
		return BandNormal
	case v < lo:
		return BandLow
	default:
		return BandHigh
	}
}

// TempBand places v (°C) relative to [TempLow, TempHigh]; the bounds are normal.
func (t Thresholds) TempBand(v int) Band { return band(v, t.TempLow, t.TempHigh) }

// LightBand places a raw ADC level relative to [LuzLow, LuzHigh].
func (t Thresholds) LightBand(v int) Band { return band(v, t.LuzLow, t.LuzHigh) }

// ClampTemp limits a temperature reading to ±MaxTemp.
func (p Profile) ClampTemp(v int) int {
	return mathx.Clamp(v, -p.Limits.MaxTemp, p.Limits.MaxTemp)
}

// ClampLight limits a raw light reading to 0..MaxLight.
func (p Profile) ClampLight(v int) int {
	return mathx.Clamp(v, 0, p.Limits.MaxLight)
}

// LightPercent maps a raw light reading onto 0..100.
func (p Profile) LightPercent(raw int) int {
	return mathx.Scale(raw, 0, p.Limits.MaxLight, 0, 100)
}
