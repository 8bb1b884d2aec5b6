package models

// TotalDuration sums the effective durations of all segments, in seconds.
func TotalDuration(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.TotalDuration()
	}
	return total
}

// TSS estimates the training stress of the segments: each phase contributes
// (duration/3600) * meanSquareIntensity * 100. Ramps use the exact mean of
// the squared linear interpolation, (lo² + lo·hi + hi²)/3. The result is
// real-valued; round it for display.
func TSS(segments []Segment) float64 {
	total := 0.0
	for _, seg := range segments {
		switch s := seg.(type) {
		case *Warmup:
			total += phaseTSS(s.Duration, rampMeanSquare(s.PowerLow, s.PowerHigh))
		case *CoolDown:
			total += phaseTSS(s.Duration, rampMeanSquare(s.PowerLow, s.PowerHigh))
		case *Ramp:
			total += phaseTSS(s.Duration, rampMeanSquare(s.PowerLow, s.PowerHigh))
		case *SteadyState:
			total += phaseTSS(s.Duration, s.Power*s.Power)
		case *IntervalsT:
			rep := phaseTSS(s.OnDuration, s.OnPower*s.OnPower) +
				phaseTSS(s.OffDuration, s.OffPower*s.OffPower)
			total += float64(s.Repeat) * rep
		case *IntervalsBlock3:
			rep := 0.0
			for p := 0; p < 3; p++ {
				rep += phaseTSS(s.Durations[p], s.Powers[p]*s.Powers[p])
			}
			total += float64(s.Repeat) * rep
		default:
			// FreeRide, MaxEffort: nominal intensity placeholder.
			total += phaseTSS(seg.TotalDuration(), NominalFreePower*NominalFreePower)
		}
	}
	return total
}

func phaseTSS(seconds int, meanSquare float64) float64 {
	return float64(seconds) / 3600 * meanSquare * 100
}

// rampMeanSquare is the closed-form average of the square of a linear ramp
// from lo to hi over its span.
func rampMeanSquare(lo, hi float64) float64 {
	return (lo*lo + lo*hi + hi*hi) / 3
}
