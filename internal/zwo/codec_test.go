package zwo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/rampa/internal/models"
)

// clearIDs strips segment identifiers so decoded workouts can be compared
// against the source. Identifiers are not part of the ZWO format.
func clearIDs(segments []models.Segment) []models.Segment {
	out := make([]models.Segment, len(segments))
	for i, seg := range segments {
		switch s := seg.(type) {
		case *models.Warmup:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.CoolDown:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.Ramp:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.SteadyState:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.IntervalsT:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.IntervalsBlock3:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.FreeRide:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		case *models.MaxEffort:
			c := *s
			c.SegmentID = ""
			out[i] = &c
		}
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	w := &models.Workout{
		Metadata: models.Metadata{
			Name:        "Threshold Builder",
			Author:      "coach",
			Description: "Progressive threshold work",
			SportType:   "bike",
			Tags:        []string{"threshold", "intervals"},
		},
		Segments: []models.Segment{
			&models.Warmup{SegmentID: "a", Duration: 600, PowerLow: 0.25, PowerHigh: 0.75},
			&models.SteadyState{SegmentID: "b", Duration: 1200, Power: 0.88},
			&models.IntervalsT{SegmentID: "c", Repeat: 4, OnDuration: 120, OnPower: 1.05, OffDuration: 60, OffPower: 0.55},
			&models.Ramp{SegmentID: "d", Duration: 300, PowerLow: 0.5, PowerHigh: 1.1},
			&models.FreeRide{SegmentID: "e", Duration: 900},
			&models.MaxEffort{SegmentID: "f", Duration: 30},
			&models.CoolDown{SegmentID: "g", Duration: 300, PowerLow: 0.75, PowerHigh: 0.25},
		},
	}

	text, err := Encode(w)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "<?xml"))

	back := Decode(text)
	assert.Equal(t, w.Metadata, back.Metadata)
	assert.Equal(t, clearIDs(w.Segments), clearIDs(back.Segments))

	// Decoded segments carry fresh identifiers.
	for _, seg := range back.Segments {
		assert.NotEmpty(t, seg.ID())
	}
}

func TestEncode_FlattensIntervalsBlock3(t *testing.T) {
	w := models.NewWorkout()
	w.Metadata.Name = "Blocks"
	w.Segments = []models.Segment{
		&models.IntervalsBlock3{
			SegmentID: "x",
			Repeat:    2,
			Durations: [3]int{30, 60, 90},
			Powers:    [3]float64{1.2, 0.8, 0.5},
		},
	}

	text, err := Encode(w)
	require.NoError(t, err)
	assert.NotContains(t, text, "IntervalsBlock3")
	assert.Equal(t, 2*3, strings.Count(text, "<SteadyState"))

	// The flattening is one-way, but duration and stress survive it.
	back := Decode(text)
	require.Len(t, back.Segments, 6)
	assert.Equal(t, models.TotalDuration(w.Segments), models.TotalDuration(back.Segments))
	assert.InDelta(t, models.TSS(w.Segments), models.TSS(back.Segments), 1e-9)
}

func TestEncode_Defaults(t *testing.T) {
	w := models.NewWorkout()
	w.Metadata.SportType = ""
	w.Metadata.Tags = []string{"a", "", "a", "b"}

	text, err := Encode(w)
	require.NoError(t, err)
	assert.Contains(t, text, "<sportType>bike</sportType>")
	// Tags are cleaned on the way out.
	assert.Equal(t, 1, strings.Count(text, `<tag name="a"`))
	assert.Equal(t, 1, strings.Count(text, `<tag name="b"`))
}

func TestDecode_Document(t *testing.T) {
	text := `<workout_file>
  <author>someone</author>
  <name>Ride</name>
  <description>desc</description>
  <sportType>bike</sportType>
  <tags>
    <tag name="z2"/>
    <tag name=""/>
  </tags>
  <workout>
    <Warmup Duration="600" PowerLow="0.25" PowerHigh="0.75"/>
    <SteadyState Duration="300" Power="0.85"/>
    <IntervalsT Repeat="5" OnDuration="60" OffDuration="60" OnPower="1" OffPower="0.5"/>
  </workout>
</workout_file>`

	w := Decode(text)
	assert.Equal(t, "Ride", w.Metadata.Name)
	assert.Equal(t, "someone", w.Metadata.Author)
	assert.Equal(t, []string{"z2"}, w.Metadata.Tags)
	require.Len(t, w.Segments, 3)

	iv, ok := w.Segments[2].(*models.IntervalsT)
	require.True(t, ok)
	assert.Equal(t, 5, iv.Repeat)
	// Total duration of the block is derived, 5 * (60 + 60).
	assert.Equal(t, 600, iv.TotalDuration())
}

func TestDecode_SkipsUnknownElements(t *testing.T) {
	text := `<workout_file>
  <name>Ride</name>
  <workout>
    <SteadyState Duration="300" Power="0.85"/>
    <Foo Duration="10"/>
    <CoolDown Duration="300" PowerLow="0.75" PowerHigh="0.25"/>
  </workout>
</workout_file>`

	w := Decode(text)
	require.Len(t, w.Segments, 2)
	assert.Equal(t, models.TagSteadyState, w.Segments[0].Tag())
	assert.Equal(t, models.TagCoolDown, w.Segments[1].Tag())
}

func TestDecode_MalformedAttributesReadAsZero(t *testing.T) {
	text := `<workout_file>
  <name>Ride</name>
  <workout>
    <SteadyState Duration="abc" Power="xyz"/>
  </workout>
</workout_file>`

	w := Decode(text)
	require.Len(t, w.Segments, 1)
	ss := w.Segments[0].(*models.SteadyState)
	assert.Equal(t, 0, ss.Duration)
	assert.Equal(t, 0.0, ss.Power)
}

func TestDecode_NeverFails(t *testing.T) {
	for _, text := range []string{"", "not xml at all", "<workout_file><workout>"} {
		w := Decode(text)
		require.NotNil(t, w, "input %q", text)
		assert.Equal(t, DefaultWorkoutName, w.Metadata.Name)
		assert.Equal(t, models.DefaultSportType, w.Metadata.SportType)
		assert.Empty(t, w.Segments)
	}
}

func TestRoundTrip_EscapesReservedCharacters(t *testing.T) {
	w := models.NewWorkout()
	w.Metadata.Name = "Sprint & Recover"
	w.Metadata.Description = `intervals <30s> "hard"`

	text, err := Encode(w)
	require.NoError(t, err)

	back := Decode(text)
	assert.Equal(t, "Sprint & Recover", back.Metadata.Name)
	assert.Equal(t, `intervals <30s> "hard"`, back.Metadata.Description)
}
