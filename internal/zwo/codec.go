// Package zwo converts workouts to and from the ZWO XML document format.
//
// Encoding is strict: every canonical attribute of a known segment type is
// always emitted. Decoding is permissive: the document is untrusted, so
// unknown elements are skipped, malformed numeric attributes read as 0, and
// a document that cannot be parsed at all yields an empty workout rather
// than an error.
package zwo

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/misterclayt0n/rampa/internal/models"
)

// DefaultWorkoutName is used when a decoded document carries no name.
const DefaultWorkoutName = "Unknown Workout"

type workoutFileXML struct {
	XMLName     xml.Name   `xml:"workout_file"`
	Author      string     `xml:"author"`
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	SportType   string     `xml:"sportType"`
	Tags        tagsXML    `xml:"tags"`
	Workout     workoutXML `xml:"workout"`
}

type tagsXML struct {
	Tags []tagXML `xml:"tag"`
}

type tagXML struct {
	Name string `xml:"name,attr"`
}

type workoutXML struct {
	Steps []stepXML `xml:",any"`
}

// stepXML carries the attributes of every known segment element. They are
// kept as strings so encoding controls the number format exactly and
// decoding can treat malformed values as 0.
type stepXML struct {
	XMLName     xml.Name
	Duration    string `xml:"Duration,attr,omitempty"`
	Power       string `xml:"Power,attr,omitempty"`
	PowerLow    string `xml:"PowerLow,attr,omitempty"`
	PowerHigh   string `xml:"PowerHigh,attr,omitempty"`
	Repeat      string `xml:"Repeat,attr,omitempty"`
	OnDuration  string `xml:"OnDuration,attr,omitempty"`
	OffDuration string `xml:"OffDuration,attr,omitempty"`
	OnPower     string `xml:"OnPower,attr,omitempty"`
	OffPower    string `xml:"OffPower,attr,omitempty"`
}

func formatPower(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func formatDuration(d int) string {
	return strconv.Itoa(d)
}

// parseInt reads an integer attribute, treating anything malformed as 0.
func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// parseFloat reads a float attribute, treating anything malformed as 0.
func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

func steadyStepXML(duration int, power float64) stepXML {
	return stepXML{
		XMLName:  xml.Name{Local: models.TagSteadyState},
		Duration: formatDuration(duration),
		Power:    formatPower(power),
	}
}

// Encode renders the workout as a ZWO document. IntervalsBlock3 segments
// have no ZWO element: each repetition's three phases are flattened into
// independent SteadyState elements, a deliberate one-way expansion that is
// never reconstructed on decode. Segment identifiers are not written.
func Encode(w *models.Workout) (string, error) {
	doc := workoutFileXML{
		Author:      w.Metadata.Author,
		Name:        w.Metadata.Name,
		Description: w.Metadata.Description,
		SportType:   w.Metadata.SportType,
	}
	if doc.SportType == "" {
		doc.SportType = models.DefaultSportType
	}
	for _, t := range w.Metadata.CleanTags() {
		doc.Tags.Tags = append(doc.Tags.Tags, tagXML{Name: t})
	}

	for _, seg := range w.Segments {
		switch s := seg.(type) {
		case *models.Warmup:
			doc.Workout.Steps = append(doc.Workout.Steps, rampStepXML(models.TagWarmup, s.Duration, s.PowerLow, s.PowerHigh))
		case *models.CoolDown:
			doc.Workout.Steps = append(doc.Workout.Steps, rampStepXML(models.TagCoolDown, s.Duration, s.PowerLow, s.PowerHigh))
		case *models.Ramp:
			doc.Workout.Steps = append(doc.Workout.Steps, rampStepXML(models.TagRamp, s.Duration, s.PowerLow, s.PowerHigh))
		case *models.SteadyState:
			doc.Workout.Steps = append(doc.Workout.Steps, steadyStepXML(s.Duration, s.Power))
		case *models.IntervalsT:
			doc.Workout.Steps = append(doc.Workout.Steps, stepXML{
				XMLName:     xml.Name{Local: models.TagIntervalsT},
				Repeat:      strconv.Itoa(s.Repeat),
				OnDuration:  formatDuration(s.OnDuration),
				OffDuration: formatDuration(s.OffDuration),
				OnPower:     formatPower(s.OnPower),
				OffPower:    formatPower(s.OffPower),
			})
		case *models.IntervalsBlock3:
			for i := 0; i < s.Repeat; i++ {
				for p := 0; p < 3; p++ {
					doc.Workout.Steps = append(doc.Workout.Steps, steadyStepXML(s.Durations[p], s.Powers[p]))
				}
			}
		case *models.FreeRide:
			doc.Workout.Steps = append(doc.Workout.Steps, stepXML{
				XMLName:  xml.Name{Local: models.TagFreeRide},
				Duration: formatDuration(s.Duration),
			})
		case *models.MaxEffort:
			doc.Workout.Steps = append(doc.Workout.Steps, stepXML{
				XMLName:  xml.Name{Local: models.TagMaxEffort},
				Duration: formatDuration(s.Duration),
			})
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}

func rampStepXML(tag string, duration int, lo, hi float64) stepXML {
	return stepXML{
		XMLName:   xml.Name{Local: tag},
		Duration:  formatDuration(duration),
		PowerLow:  formatPower(lo),
		PowerHigh: formatPower(hi),
	}
}

// Decode parses a ZWO document. It never fails: a document that is not
// well-formed yields best-effort metadata and no segments. Identifiers are
// not part of the format, every decoded segment gets a fresh one.
func Decode(text string) *models.Workout {
	var doc workoutFileXML
	// Ignore the error on purpose: whatever was parsed before the failure
	// is kept, the rest falls back to defaults below.
	_ = xml.Unmarshal([]byte(text), &doc)

	w := models.NewWorkout()
	w.Metadata.Author = doc.Author
	w.Metadata.Name = doc.Name
	w.Metadata.Description = doc.Description
	if doc.SportType != "" {
		w.Metadata.SportType = doc.SportType
	}
	if w.Metadata.Name == "" {
		w.Metadata.Name = DefaultWorkoutName
	}
	for _, t := range doc.Tags.Tags {
		if t.Name == "" {
			continue
		}
		w.Metadata.Tags = append(w.Metadata.Tags, t.Name)
	}

	for _, step := range doc.Workout.Steps {
		id := uuid.New().String()
		switch step.XMLName.Local {
		case models.TagWarmup:
			w.Segments = append(w.Segments, &models.Warmup{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
				PowerLow:  parseFloat(step.PowerLow),
				PowerHigh: parseFloat(step.PowerHigh),
			})
		case models.TagCoolDown:
			w.Segments = append(w.Segments, &models.CoolDown{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
				PowerLow:  parseFloat(step.PowerLow),
				PowerHigh: parseFloat(step.PowerHigh),
			})
		case models.TagRamp:
			w.Segments = append(w.Segments, &models.Ramp{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
				PowerLow:  parseFloat(step.PowerLow),
				PowerHigh: parseFloat(step.PowerHigh),
			})
		case models.TagSteadyState:
			w.Segments = append(w.Segments, &models.SteadyState{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
				Power:     parseFloat(step.Power),
			})
		case models.TagIntervalsT:
			// The block's total duration stays derived from Repeat and the
			// phase durations, it is never stored.
			w.Segments = append(w.Segments, &models.IntervalsT{
				SegmentID:   id,
				Repeat:      parseInt(step.Repeat),
				OnDuration:  parseInt(step.OnDuration),
				OnPower:     parseFloat(step.OnPower),
				OffDuration: parseInt(step.OffDuration),
				OffPower:    parseFloat(step.OffPower),
			})
		case models.TagFreeRide:
			w.Segments = append(w.Segments, &models.FreeRide{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
			})
		case models.TagMaxEffort:
			w.Segments = append(w.Segments, &models.MaxEffort{
				SegmentID: id,
				Duration:  parseInt(step.Duration),
			})
		default:
			// Unknown element, skip it.
		}
	}

	return w
}
