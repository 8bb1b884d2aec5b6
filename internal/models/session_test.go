package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	w := &Workout{
		Metadata: Metadata{
			Name:        "Over-Unders",
			Author:      "coach",
			Description: "2x through",
			SportType:   "bike",
			Tags:        []string{"threshold", "sweetspot"},
		},
		Segments: []Segment{
			&Warmup{SegmentID: "w1", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
			&SteadyState{SegmentID: "s1", Duration: 1200, Power: 0.88},
			&IntervalsT{SegmentID: "i1", Repeat: 4, OnDuration: 120, OnPower: 1.05, OffDuration: 60, OffPower: 0.9},
			&IntervalsBlock3{SegmentID: "b1", Repeat: 2, Durations: [3]int{30, 60, 90}, Powers: [3]float64{1.2, 0.8, 0.5}},
			&Ramp{SegmentID: "r1", Duration: 300, PowerLow: 0.5, PowerHigh: 1.1},
			&FreeRide{SegmentID: "f1", Duration: 900},
			&MaxEffort{SegmentID: "m1", Duration: 30},
			&CoolDown{SegmentID: "c1", Duration: 300, PowerLow: 0.75, PowerHigh: 0.25},
		},
	}

	back, err := WorkoutFromState(w.State())
	require.NoError(t, err)

	assert.Equal(t, w.Metadata, back.Metadata)
	require.Len(t, back.Segments, len(w.Segments))
	for i := range w.Segments {
		assert.Equal(t, w.Segments[i], back.Segments[i], "segment %d", i)
	}
}

func TestWorkoutFromState_Defaults(t *testing.T) {
	// A segment persisted without an id gets a fresh one, and a missing
	// sport type falls back to the default.
	st := &WorkoutState{
		Name: "bare",
		Segments: []SegmentState{
			{Type: TagSteadyState, Duration: 300, Power: 0.85},
		},
	}

	w, err := WorkoutFromState(st)
	require.NoError(t, err)
	assert.Equal(t, DefaultSportType, w.Metadata.SportType)
	require.Len(t, w.Segments, 1)
	assert.NotEmpty(t, w.Segments[0].ID())
}

func TestWorkoutFromState_UnknownType(t *testing.T) {
	st := &WorkoutState{
		Segments: []SegmentState{{ID: "x", Type: "Sprint"}},
	}
	_, err := WorkoutFromState(st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown segment type")
}
