package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Empty(t *testing.T) {
	assert.Empty(t, Project(nil))
}

func TestProject_RampEndpoints(t *testing.T) {
	points := Project([]Segment{
		&Warmup{SegmentID: "a", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
	})
	require.Len(t, points, 2)
	assert.Equal(t, Breakpoint{Time: 0, Power: 0.25}, points[0])
	assert.Equal(t, Breakpoint{Time: 600, Power: 0.75}, points[1])
}

func TestProject_FlatSegmentsEmitTwoPoints(t *testing.T) {
	points := Project([]Segment{
		&SteadyState{SegmentID: "a", Duration: 300, Power: 0.85},
		&SteadyState{SegmentID: "b", Duration: 120, Power: 1.1},
	})
	require.Len(t, points, 4)
	assert.Equal(t, Breakpoint{Time: 0, Power: 0.85}, points[0])
	assert.Equal(t, Breakpoint{Time: 300, Power: 0.85}, points[1])
	// The power jump shares a timestamp, drawn as a vertical edge.
	assert.Equal(t, Breakpoint{Time: 300, Power: 1.1}, points[2])
	assert.Equal(t, Breakpoint{Time: 420, Power: 1.1}, points[3])
}

func TestProject_IntervalsExpandPerRepetition(t *testing.T) {
	points := Project([]Segment{
		&IntervalsT{SegmentID: "a", Repeat: 3, OnDuration: 60, OnPower: 1.0, OffDuration: 30, OffPower: 0.5},
	})
	// Two flat phases per repetition, two points each.
	require.Len(t, points, 3*2*2)
	assert.Equal(t, Breakpoint{Time: 0, Power: 1.0}, points[0])
	assert.Equal(t, Breakpoint{Time: 60, Power: 1.0}, points[1])
	assert.Equal(t, Breakpoint{Time: 60, Power: 0.5}, points[2])
	assert.Equal(t, Breakpoint{Time: 90, Power: 0.5}, points[3])
	// Second repetition starts where the first ended.
	assert.Equal(t, Breakpoint{Time: 90, Power: 1.0}, points[4])
}

func TestProject_FreeSegmentsAtNominalPower(t *testing.T) {
	points := Project([]Segment{&FreeRide{SegmentID: "a", Duration: 900}})
	require.Len(t, points, 2)
	assert.Equal(t, NominalFreePower, points[0].Power)
	assert.Equal(t, NominalFreePower, points[1].Power)
}

func TestProject_TimesNonDecreasingAndEndAtTotal(t *testing.T) {
	segments := []Segment{
		&Warmup{SegmentID: "a", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
		&IntervalsT{SegmentID: "b", Repeat: 4, OnDuration: 45, OnPower: 1.15, OffDuration: 75, OffPower: 0.5},
		&IntervalsBlock3{SegmentID: "c", Repeat: 2, Durations: [3]int{30, 60, 90}, Powers: [3]float64{1.2, 0.8, 0.5}},
		&MaxEffort{SegmentID: "d", Duration: 120},
		&CoolDown{SegmentID: "e", Duration: 300, PowerLow: 0.75, PowerHigh: 0.25},
	}

	points := Project(segments)
	require.NotEmpty(t, points)

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Time, points[i-1].Time)
	}
	assert.Equal(t, 0, points[0].Time)
	assert.Equal(t, TotalDuration(segments), points[len(points)-1].Time)
}
