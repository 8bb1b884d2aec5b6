package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneFor_Boundaries(t *testing.T) {
	assert.Equal(t, 1, ZoneFor(0).Number)
	assert.Equal(t, 1, ZoneFor(0.59).Number)
	assert.Equal(t, 2, ZoneFor(0.60).Number)
	assert.Equal(t, 2, ZoneFor(0.75).Number)
	assert.Equal(t, 3, ZoneFor(0.76).Number)
	assert.Equal(t, 4, ZoneFor(0.90).Number)
	assert.Equal(t, 5, ZoneFor(1.05).Number)
	assert.Equal(t, 6, ZoneFor(1.19).Number)
}

func TestZoneFor_NoUpperBound(t *testing.T) {
	assert.Equal(t, 6, ZoneFor(1.5).Number)
	assert.Equal(t, 6, ZoneFor(50.0).Number)
	assert.Equal(t, 6, ZoneFor(1e9).Number)
}

func TestZoneFor_Exhaustive(t *testing.T) {
	// Every ratio in small steps maps to exactly one zone and the zone
	// numbers never decrease as the ratio climbs.
	prev := 0
	for r := 0.0; r < 3.0; r += 0.01 {
		z := ZoneFor(r)
		assert.GreaterOrEqual(t, z.Number, 1)
		assert.LessOrEqual(t, z.Number, 6)
		assert.GreaterOrEqual(t, z.Number, prev)
		prev = z.Number
	}
}
