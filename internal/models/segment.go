package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Canonical segment type tags. These match the ZWO element names.
const (
	TagWarmup          = "Warmup"
	TagCoolDown        = "CoolDown"
	TagRamp            = "Ramp"
	TagSteadyState     = "SteadyState"
	TagIntervalsT      = "IntervalsT"
	TagIntervalsBlock3 = "IntervalsBlock3"
	TagFreeRide        = "FreeRide"
	TagMaxEffort       = "MaxEffort"
)

// Segment is a single step of a workout. All power values are fractions of
// FTP (0.85, not 85), all durations are seconds.
type Segment interface {
	ID() string
	Tag() string

	// TotalDuration returns the effective duration in seconds. Interval
	// variants always derive it from repeat count and phase durations,
	// it is never stored independently.
	TotalDuration() int

	// clone returns a deep copy carrying the given identifier. Unexported
	// on purpose: the set of segment variants is closed.
	clone(id string) Segment
}

// Warmup is a linear ramp upward.
type Warmup struct {
	SegmentID string
	Duration  int
	PowerLow  float64
	PowerHigh float64
}

// CoolDown is a linear ramp downward. Same shape as Warmup, inverted defaults.
type CoolDown struct {
	SegmentID string
	Duration  int
	PowerLow  float64
	PowerHigh float64
}

// Ramp is a generic linear ramp, direction unconstrained.
type Ramp struct {
	SegmentID string
	Duration  int
	PowerLow  float64
	PowerHigh float64
}

// SteadyState holds a constant power target.
type SteadyState struct {
	SegmentID string
	Duration  int
	Power     float64
}

// IntervalsT is an on/off block repeated Repeat times.
type IntervalsT struct {
	SegmentID   string
	Repeat      int
	OnDuration  int
	OnPower     float64
	OffDuration int
	OffPower    float64
}

// IntervalsBlock3 generalizes IntervalsT to three phases per repetition.
type IntervalsBlock3 struct {
	SegmentID string
	Repeat    int
	Durations [3]int
	Powers    [3]float64
}

// FreeRide is unstructured effort with no power target.
type FreeRide struct {
	SegmentID string
	Duration  int
}

// MaxEffort is an all-out effort with no power target.
type MaxEffort struct {
	SegmentID string
	Duration  int
}

func (s *Warmup) ID() string          { return s.SegmentID }
func (s *CoolDown) ID() string        { return s.SegmentID }
func (s *Ramp) ID() string            { return s.SegmentID }
func (s *SteadyState) ID() string     { return s.SegmentID }
func (s *IntervalsT) ID() string      { return s.SegmentID }
func (s *IntervalsBlock3) ID() string { return s.SegmentID }
func (s *FreeRide) ID() string        { return s.SegmentID }
func (s *MaxEffort) ID() string       { return s.SegmentID }

func (s *Warmup) Tag() string          { return TagWarmup }
func (s *CoolDown) Tag() string        { return TagCoolDown }
func (s *Ramp) Tag() string            { return TagRamp }
func (s *SteadyState) Tag() string     { return TagSteadyState }
func (s *IntervalsT) Tag() string      { return TagIntervalsT }
func (s *IntervalsBlock3) Tag() string { return TagIntervalsBlock3 }
func (s *FreeRide) Tag() string        { return TagFreeRide }
func (s *MaxEffort) Tag() string       { return TagMaxEffort }

func (s *Warmup) TotalDuration() int      { return s.Duration }
func (s *CoolDown) TotalDuration() int    { return s.Duration }
func (s *Ramp) TotalDuration() int        { return s.Duration }
func (s *SteadyState) TotalDuration() int { return s.Duration }
func (s *FreeRide) TotalDuration() int    { return s.Duration }
func (s *MaxEffort) TotalDuration() int   { return s.Duration }

func (s *IntervalsT) TotalDuration() int {
	return s.Repeat * (s.OnDuration + s.OffDuration)
}

func (s *IntervalsBlock3) TotalDuration() int {
	sum := 0
	for _, d := range s.Durations {
		sum += d
	}
	return s.Repeat * sum
}

func (s *Warmup) clone(id string) Segment          { c := *s; c.SegmentID = id; return &c }
func (s *CoolDown) clone(id string) Segment        { c := *s; c.SegmentID = id; return &c }
func (s *Ramp) clone(id string) Segment            { c := *s; c.SegmentID = id; return &c }
func (s *SteadyState) clone(id string) Segment     { c := *s; c.SegmentID = id; return &c }
func (s *IntervalsT) clone(id string) Segment      { c := *s; c.SegmentID = id; return &c }
func (s *IntervalsBlock3) clone(id string) Segment { c := *s; c.SegmentID = id; return &c }
func (s *FreeRide) clone(id string) Segment        { c := *s; c.SegmentID = id; return &c }
func (s *MaxEffort) clone(id string) Segment       { c := *s; c.SegmentID = id; return &c }

// NewSegment constructs a segment of the given type with its defaults and a
// fresh identifier. Unknown tags are rejected.
func NewSegment(tag string) (Segment, error) {
	id := uuid.New().String()

	switch tag {
	case TagWarmup:
		return &Warmup{SegmentID: id, Duration: 300, PowerLow: 0.25, PowerHigh: 0.75}, nil
	case TagCoolDown:
		return &CoolDown{SegmentID: id, Duration: 300, PowerLow: 0.75, PowerHigh: 0.25}, nil
	case TagRamp:
		return &Ramp{SegmentID: id, Duration: 300, PowerLow: 0.25, PowerHigh: 0.75}, nil
	case TagSteadyState:
		return &SteadyState{SegmentID: id, Duration: 300, Power: 0.85}, nil
	case TagIntervalsT:
		return &IntervalsT{SegmentID: id, Repeat: 5, OnDuration: 60, OnPower: 1.0, OffDuration: 60, OffPower: 0.5}, nil
	case TagIntervalsBlock3:
		return &IntervalsBlock3{
			SegmentID: id,
			Repeat:    3,
			Durations: [3]int{60, 60, 60},
			Powers:    [3]float64{1.2, 0.8, 0.5},
		}, nil
	case TagFreeRide:
		return &FreeRide{SegmentID: id, Duration: 300}, nil
	case TagMaxEffort:
		return &MaxEffort{SegmentID: id, Duration: 300}, nil
	default:
		return nil, fmt.Errorf("Unknown segment type %q", tag)
	}
}

// parseFieldValue applies the semantic parse rule for a field name: power
// fields take a percentage and store a fraction, duration fields take "M:SS"
// or bare seconds, everything else is a plain integer.
func parseFieldValue(field, raw string) (intVal int, floatVal float64, err error) {
	switch {
	case strings.Contains(field, "power"):
		pct, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if perr != nil {
			return 0, 0, fmt.Errorf("Invalid power value %q", raw)
		}
		if pct < 0 {
			return 0, 0, fmt.Errorf("Power cannot be negative")
		}
		return 0, pct / 100, nil
	case strings.Contains(field, "duration"):
		secs, perr := ParseTime(raw)
		if perr != nil {
			return 0, 0, perr
		}
		return secs, 0, nil
	default:
		n, perr := strconv.Atoi(strings.TrimSpace(raw))
		if perr != nil {
			return 0, 0, fmt.Errorf("Invalid value %q for field %q", raw, field)
		}
		if n < 0 {
			return 0, 0, fmt.Errorf("Field %q cannot be negative", field)
		}
		return n, 0, nil
	}
}

// updateSegmentField parses raw according to the field's semantic type and
// assigns it. The segment is left untouched on any error.
func updateSegmentField(seg Segment, field, raw string) error {
	iv, fv, err := parseFieldValue(field, raw)
	if err != nil {
		return err
	}

	switch s := seg.(type) {
	case *Warmup:
		return setRampField(&s.Duration, &s.PowerLow, &s.PowerHigh, field, iv, fv)
	case *CoolDown:
		return setRampField(&s.Duration, &s.PowerLow, &s.PowerHigh, field, iv, fv)
	case *Ramp:
		return setRampField(&s.Duration, &s.PowerLow, &s.PowerHigh, field, iv, fv)
	case *SteadyState:
		switch field {
		case "duration":
			s.Duration = iv
		case "power":
			s.Power = fv
		default:
			return unknownField(seg, field)
		}
		return nil
	case *IntervalsT:
		switch field {
		case "repeat":
			s.Repeat = iv
		case "on_duration":
			s.OnDuration = iv
		case "off_duration":
			s.OffDuration = iv
		case "on_power":
			s.OnPower = fv
		case "off_power":
			s.OffPower = fv
		default:
			return unknownField(seg, field)
		}
		return nil
	case *IntervalsBlock3:
		switch field {
		case "repeat":
			s.Repeat = iv
		case "duration_1":
			s.Durations[0] = iv
		case "duration_2":
			s.Durations[1] = iv
		case "duration_3":
			s.Durations[2] = iv
		case "power_1":
			s.Powers[0] = fv
		case "power_2":
			s.Powers[1] = fv
		case "power_3":
			s.Powers[2] = fv
		default:
			return unknownField(seg, field)
		}
		return nil
	case *FreeRide:
		if field != "duration" {
			return unknownField(seg, field)
		}
		s.Duration = iv
		return nil
	case *MaxEffort:
		if field != "duration" {
			return unknownField(seg, field)
		}
		s.Duration = iv
		return nil
	default:
		return fmt.Errorf("Unknown segment type %q", seg.Tag())
	}
}

func setRampField(duration *int, powerLow, powerHigh *float64, field string, iv int, fv float64) error {
	switch field {
	case "duration":
		*duration = iv
	case "power_low":
		*powerLow = fv
	case "power_high":
		*powerHigh = fv
	default:
		return fmt.Errorf("Unknown field %q", field)
	}
	return nil
}

func unknownField(seg Segment, field string) error {
	return fmt.Errorf("Unknown field %q for segment type %s", field, seg.Tag())
}
