package models

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultSportType is the sport token written to ZWO files.
const DefaultSportType = "bike"

type Metadata struct {
	Name        string
	Author      string
	Description string
	SportType   string
	Tags        []string
}

// CleanTags returns the tag list with empty entries and duplicates removed,
// preserving first-seen order.
func (m *Metadata) CleanTags() []string {
	seen := make(map[string]bool)
	var result []string
	for _, t := range m.Tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}

// Workout is an ordered sequence of segments plus metadata. Segment order is
// execution order, no segment carries its own start time.
type Workout struct {
	Metadata Metadata
	Segments []Segment
}

// NewWorkout returns an empty workout with the default sport type.
func NewWorkout() *Workout {
	return &Workout{
		Metadata: Metadata{SportType: DefaultSportType},
	}
}

// indexOf returns the position of the segment with the given id, or -1.
func (w *Workout) indexOf(id string) int {
	for i, s := range w.Segments {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// FindSegment returns the segment with the given id, or nil.
func (w *Workout) FindSegment(id string) Segment {
	if i := w.indexOf(id); i >= 0 {
		return w.Segments[i]
	}
	return nil
}

// AddSegment appends a new segment of the given type with its defaults and
// returns it. Unknown types are rejected.
func (w *Workout) AddSegment(tag string) (Segment, error) {
	seg, err := NewSegment(tag)
	if err != nil {
		return nil, err
	}
	w.Segments = append(w.Segments, seg)
	return seg, nil
}

// RemoveSegment deletes the segment with the given id. Removing an unknown
// id is a no-op.
func (w *Workout) RemoveSegment(id string) {
	i := w.indexOf(id)
	if i < 0 {
		return
	}
	w.Segments = append(w.Segments[:i], w.Segments[i+1:]...)
}

// MoveSegment removes the segment with the given id and reinserts it at
// target, clamped into the valid index range. Moving an unknown id is a
// no-op.
func (w *Workout) MoveSegment(id string, target int) {
	i := w.indexOf(id)
	if i < 0 {
		return
	}

	if target < 0 {
		target = 0
	}
	if target > len(w.Segments)-1 {
		target = len(w.Segments) - 1
	}
	if target == i {
		return
	}

	seg := w.Segments[i]
	rest := append(w.Segments[:i], w.Segments[i+1:]...)
	w.Segments = append(rest[:target], append([]Segment{seg}, rest[target:]...)...)
}

// DuplicateSegment deep-copies the segment with the given id under a fresh
// identifier and inserts the copy immediately after the original. Returns
// the copy, or nil if the id is unknown.
func (w *Workout) DuplicateSegment(id string) Segment {
	i := w.indexOf(id)
	if i < 0 {
		return nil
	}

	dup := w.Segments[i].clone(uuid.New().String())
	w.Segments = append(w.Segments[:i+1], append([]Segment{dup}, w.Segments[i+1:]...)...)
	return dup
}

// UpdateField parses raw according to the field's semantic type and assigns
// it on the segment with the given id. Unlike the structural operations, an
// unknown id is an error here: a field edit against a missing segment is a
// caller bug. The segment is unchanged on any error.
func (w *Workout) UpdateField(id, field, raw string) error {
	seg := w.FindSegment(id)
	if seg == nil {
		return fmt.Errorf("No segment with id %q", id)
	}
	return updateSegmentField(seg, field, raw)
}
