package models

import (
	"fmt"

	"github.com/google/uuid"
)

//
// For TOML persistence of the working session only. Unlike the ZWO codec
// this representation round-trips every variant, including IntervalsBlock3.
//

type WorkoutState struct {
	Name        string         `toml:"name"`
	Author      string         `toml:"author"`
	Description string         `toml:"description"`
	SportType   string         `toml:"sport_type"`
	Tags        []string       `toml:"tags,omitempty"`
	Segments    []SegmentState `toml:"segment"`
}

type SegmentState struct {
	ID          string    `toml:"id"`
	Type        string    `toml:"type"`
	Duration    int       `toml:"duration,omitempty"`
	Power       float64   `toml:"power,omitempty"`
	PowerLow    float64   `toml:"power_low,omitempty"`
	PowerHigh   float64   `toml:"power_high,omitempty"`
	Repeat      int       `toml:"repeat,omitempty"`
	OnDuration  int       `toml:"on_duration,omitempty"`
	OnPower     float64   `toml:"on_power,omitempty"`
	OffDuration int       `toml:"off_duration,omitempty"`
	OffPower    float64   `toml:"off_power,omitempty"`
	Durations   []int     `toml:"durations,omitempty"` // IntervalsBlock3 phases.
	Powers      []float64 `toml:"powers,omitempty"`
}

// State converts the workout to its persistable form.
func (w *Workout) State() *WorkoutState {
	st := &WorkoutState{
		Name:        w.Metadata.Name,
		Author:      w.Metadata.Author,
		Description: w.Metadata.Description,
		SportType:   w.Metadata.SportType,
		Tags:        w.Metadata.Tags,
	}

	for _, seg := range w.Segments {
		ss := SegmentState{ID: seg.ID(), Type: seg.Tag()}
		switch s := seg.(type) {
		case *Warmup:
			ss.Duration, ss.PowerLow, ss.PowerHigh = s.Duration, s.PowerLow, s.PowerHigh
		case *CoolDown:
			ss.Duration, ss.PowerLow, ss.PowerHigh = s.Duration, s.PowerLow, s.PowerHigh
		case *Ramp:
			ss.Duration, ss.PowerLow, ss.PowerHigh = s.Duration, s.PowerLow, s.PowerHigh
		case *SteadyState:
			ss.Duration, ss.Power = s.Duration, s.Power
		case *IntervalsT:
			ss.Repeat = s.Repeat
			ss.OnDuration, ss.OnPower = s.OnDuration, s.OnPower
			ss.OffDuration, ss.OffPower = s.OffDuration, s.OffPower
		case *IntervalsBlock3:
			ss.Repeat = s.Repeat
			ss.Durations = append(ss.Durations, s.Durations[:]...)
			ss.Powers = append(ss.Powers, s.Powers[:]...)
		case *FreeRide:
			ss.Duration = s.Duration
		case *MaxEffort:
			ss.Duration = s.Duration
		}
		st.Segments = append(st.Segments, ss)
	}

	return st
}

// WorkoutFromState rebuilds a workout from its persisted form. Identifiers
// are preserved; segments persisted without one get a fresh identifier.
func WorkoutFromState(st *WorkoutState) (*Workout, error) {
	w := &Workout{
		Metadata: Metadata{
			Name:        st.Name,
			Author:      st.Author,
			Description: st.Description,
			SportType:   st.SportType,
			Tags:        st.Tags,
		},
	}
	if w.Metadata.SportType == "" {
		w.Metadata.SportType = DefaultSportType
	}

	for _, ss := range st.Segments {
		id := ss.ID
		if id == "" {
			id = uuid.New().String()
		}

		var seg Segment
		switch ss.Type {
		case TagWarmup:
			seg = &Warmup{SegmentID: id, Duration: ss.Duration, PowerLow: ss.PowerLow, PowerHigh: ss.PowerHigh}
		case TagCoolDown:
			seg = &CoolDown{SegmentID: id, Duration: ss.Duration, PowerLow: ss.PowerLow, PowerHigh: ss.PowerHigh}
		case TagRamp:
			seg = &Ramp{SegmentID: id, Duration: ss.Duration, PowerLow: ss.PowerLow, PowerHigh: ss.PowerHigh}
		case TagSteadyState:
			seg = &SteadyState{SegmentID: id, Duration: ss.Duration, Power: ss.Power}
		case TagIntervalsT:
			seg = &IntervalsT{
				SegmentID:   id,
				Repeat:      ss.Repeat,
				OnDuration:  ss.OnDuration,
				OnPower:     ss.OnPower,
				OffDuration: ss.OffDuration,
				OffPower:    ss.OffPower,
			}
		case TagIntervalsBlock3:
			b := &IntervalsBlock3{SegmentID: id, Repeat: ss.Repeat}
			for i := 0; i < 3 && i < len(ss.Durations); i++ {
				b.Durations[i] = ss.Durations[i]
			}
			for i := 0; i < 3 && i < len(ss.Powers); i++ {
				b.Powers[i] = ss.Powers[i]
			}
			seg = b
		case TagFreeRide:
			seg = &FreeRide{SegmentID: id, Duration: ss.Duration}
		case TagMaxEffort:
			seg = &MaxEffort{SegmentID: id, Duration: ss.Duration}
		default:
			return nil, fmt.Errorf("Unknown segment type %q in session file", ss.Type)
		}
		w.Segments = append(w.Segments, seg)
	}

	return w, nil
}
