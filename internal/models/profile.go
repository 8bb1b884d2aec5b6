package models

// NominalFreePower is the placeholder ratio used to draw and estimate
// segments that have no power target.
const NominalFreePower = 0.5

// Breakpoint is one point of the piecewise-linear power curve.
type Breakpoint struct {
	Time  int     // seconds from workout start
	Power float64 // fraction of FTP
}

// Project walks the segments left to right from time 0 and produces the
// breakpoints of the power profile. Flat segments emit two points so they
// render with width; consecutive points may share a timestamp where the
// power jumps vertically. Recomputed from scratch on every call.
func Project(segments []Segment) []Breakpoint {
	var points []Breakpoint
	t := 0

	flat := func(duration int, power float64) {
		points = append(points, Breakpoint{Time: t, Power: power})
		t += duration
		points = append(points, Breakpoint{Time: t, Power: power})
	}

	for _, seg := range segments {
		switch s := seg.(type) {
		case *Warmup:
			points = append(points, Breakpoint{Time: t, Power: s.PowerLow})
			t += s.Duration
			points = append(points, Breakpoint{Time: t, Power: s.PowerHigh})
		case *CoolDown:
			points = append(points, Breakpoint{Time: t, Power: s.PowerLow})
			t += s.Duration
			points = append(points, Breakpoint{Time: t, Power: s.PowerHigh})
		case *Ramp:
			points = append(points, Breakpoint{Time: t, Power: s.PowerLow})
			t += s.Duration
			points = append(points, Breakpoint{Time: t, Power: s.PowerHigh})
		case *SteadyState:
			flat(s.Duration, s.Power)
		case *IntervalsT:
			for i := 0; i < s.Repeat; i++ {
				flat(s.OnDuration, s.OnPower)
				flat(s.OffDuration, s.OffPower)
			}
		case *IntervalsBlock3:
			for i := 0; i < s.Repeat; i++ {
				for p := 0; p < 3; p++ {
					flat(s.Durations[p], s.Powers[p])
				}
			}
		default:
			// FreeRide, MaxEffort: no target, draw at the nominal ratio.
			flat(seg.TotalDuration(), NominalFreePower)
		}
	}

	return points
}
