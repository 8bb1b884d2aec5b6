package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/rampa/internal/models"
	"github.com/misterclayt0n/rampa/internal/utils"
)

// loadSession loads the working workout, erroring if none is in progress.
func loadSession() (*models.Workout, error) {
	if !utils.SessionExists() {
		return nil, fmt.Errorf("No workout in progress. Run 'rampa init' first")
	}

	w, err := utils.LoadSessionState()
	if err != nil {
		return nil, fmt.Errorf("Failed to load workout: %w", err)
	}
	return w, nil
}

// segmentAt resolves a 1-based segment index argument.
func segmentAt(w *models.Workout, arg string) (models.Segment, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return nil, fmt.Errorf("Invalid segment index. Must be a positive integer")
	}
	if idx > len(w.Segments) {
		return nil, fmt.Errorf("Segment index out of range")
	}
	return w.Segments[idx-1], nil
}

// peakPower picks the ratio used to zone-color a segment in listings.
func peakPower(seg models.Segment) float64 {
	switch s := seg.(type) {
	case *models.Warmup:
		return s.PowerHigh
	case *models.CoolDown:
		return s.PowerHigh
	case *models.Ramp:
		return s.PowerHigh
	case *models.SteadyState:
		return s.Power
	case *models.IntervalsT:
		return s.OnPower
	case *models.IntervalsBlock3:
		max := 0.0
		for _, p := range s.Powers {
			if p > max {
				max = p
			}
		}
		return max
	default:
		return models.NominalFreePower
	}
}

func percent(p float64) string {
	return fmt.Sprintf("%d%%", int(p*100+0.5))
}

// describeSegment renders a segment's fields for the list views.
func describeSegment(seg models.Segment) string {
	switch s := seg.(type) {
	case *models.Warmup:
		return fmt.Sprintf("%s  %s → %s", models.FormatTime(s.Duration), percent(s.PowerLow), percent(s.PowerHigh))
	case *models.CoolDown:
		return fmt.Sprintf("%s  %s → %s", models.FormatTime(s.Duration), percent(s.PowerLow), percent(s.PowerHigh))
	case *models.Ramp:
		return fmt.Sprintf("%s  %s → %s", models.FormatTime(s.Duration), percent(s.PowerLow), percent(s.PowerHigh))
	case *models.SteadyState:
		return fmt.Sprintf("%s  @ %s", models.FormatTime(s.Duration), percent(s.Power))
	case *models.IntervalsT:
		return fmt.Sprintf("%dx (%s @ %s / %s @ %s)",
			s.Repeat,
			models.FormatTime(s.OnDuration), percent(s.OnPower),
			models.FormatTime(s.OffDuration), percent(s.OffPower))
	case *models.IntervalsBlock3:
		return fmt.Sprintf("%dx (%s @ %s / %s @ %s / %s @ %s)",
			s.Repeat,
			models.FormatTime(s.Durations[0]), percent(s.Powers[0]),
			models.FormatTime(s.Durations[1]), percent(s.Powers[1]),
			models.FormatTime(s.Durations[2]), percent(s.Powers[2]))
	default:
		return fmt.Sprintf("%s  (no target)", models.FormatTime(seg.TotalDuration()))
	}
}
