package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalDuration(t *testing.T) {
	segments := []Segment{
		&Warmup{SegmentID: "a", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
		&SteadyState{SegmentID: "b", Duration: 1200, Power: 0.9},
		&IntervalsT{SegmentID: "c", Repeat: 5, OnDuration: 60, OnPower: 1.0, OffDuration: 60, OffPower: 0.5},
		&CoolDown{SegmentID: "d", Duration: 300, PowerLow: 0.75, PowerHigh: 0.25},
	}
	// The interval block contributes 5 * (60 + 60) = 600, derived, not stored.
	assert.Equal(t, 600+1200+600+300, TotalDuration(segments))
}

func TestTotalDuration_IntervalsBlock3(t *testing.T) {
	b := &IntervalsBlock3{
		SegmentID: "x",
		Repeat:    4,
		Durations: [3]int{30, 60, 90},
		Powers:    [3]float64{1.2, 0.8, 0.5},
	}
	assert.Equal(t, 4*(30+60+90), b.TotalDuration())
}

func TestTotalDuration_Empty(t *testing.T) {
	assert.Equal(t, 0, TotalDuration(nil))
}

func TestTSS_SteadyHourAtFTP(t *testing.T) {
	// One hour at exactly FTP is 100 TSS by definition.
	segments := []Segment{&SteadyState{SegmentID: "a", Duration: 3600, Power: 1.0}}
	assert.InDelta(t, 100.0, TSS(segments), 1e-9)
}

func TestTSS_Ramp(t *testing.T) {
	// An hour ramping 0 -> 1.0 has mean square (0 + 0 + 1)/3.
	segments := []Segment{&Warmup{SegmentID: "a", Duration: 3600, PowerLow: 0, PowerHigh: 1.0}}
	assert.InDelta(t, 100.0/3, TSS(segments), 1e-9)

	// Flat ramp degenerates to steady state.
	ramp := []Segment{&Ramp{SegmentID: "b", Duration: 1800, PowerLow: 0.8, PowerHigh: 0.8}}
	steady := []Segment{&SteadyState{SegmentID: "c", Duration: 1800, Power: 0.8}}
	assert.InDelta(t, TSS(steady), TSS(ramp), 1e-9)
}

func TestTSS_Intervals(t *testing.T) {
	// Repeat scales the per-repetition stress linearly.
	one := &IntervalsT{SegmentID: "a", Repeat: 1, OnDuration: 60, OnPower: 1.2, OffDuration: 120, OffPower: 0.5}
	five := &IntervalsT{SegmentID: "b", Repeat: 5, OnDuration: 60, OnPower: 1.2, OffDuration: 120, OffPower: 0.5}
	assert.InDelta(t, 5*TSS([]Segment{one}), TSS([]Segment{five}), 1e-9)

	// A three-phase block matches the equivalent flattened steady states.
	block := &IntervalsBlock3{
		SegmentID: "c",
		Repeat:    2,
		Durations: [3]int{60, 120, 180},
		Powers:    [3]float64{1.2, 0.8, 0.5},
	}
	var flat []Segment
	for i := 0; i < 2; i++ {
		flat = append(flat,
			&SteadyState{SegmentID: "f1", Duration: 60, Power: 1.2},
			&SteadyState{SegmentID: "f2", Duration: 120, Power: 0.8},
			&SteadyState{SegmentID: "f3", Duration: 180, Power: 0.5},
		)
	}
	assert.InDelta(t, TSS(flat), TSS([]Segment{block}), 1e-9)
}

func TestTSS_FreeSegmentsUseNominalPower(t *testing.T) {
	free := []Segment{&FreeRide{SegmentID: "a", Duration: 3600}}
	max := []Segment{&MaxEffort{SegmentID: "b", Duration: 3600}}
	want := NominalFreePower * NominalFreePower * 100
	assert.InDelta(t, want, TSS(free), 1e-9)
	assert.InDelta(t, want, TSS(max), 1e-9)
}

func TestMetrics_OrderInvariant(t *testing.T) {
	a := []Segment{
		&Warmup{SegmentID: "1", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
		&SteadyState{SegmentID: "2", Duration: 1200, Power: 0.9},
		&IntervalsT{SegmentID: "3", Repeat: 4, OnDuration: 30, OnPower: 1.2, OffDuration: 90, OffPower: 0.4},
	}
	b := []Segment{a[2], a[0], a[1]}

	require.Equal(t, TotalDuration(a), TotalDuration(b))
	assert.InDelta(t, TSS(a), TSS(b), 1e-9)
}
