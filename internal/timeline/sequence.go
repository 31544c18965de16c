// Package timeline computes which sub-segments of a stream's recorded
// media clips reproduce an episode's cuts. Clips are treated as
// back-to-back segments of one logical recording; cuts are time ranges
// measured against that concatenated timeline.
package timeline

// Clip is one source media file. Order matters: clips are assumed
// contiguous, with no gaps or overlaps, in the order given.
type Clip struct {
	URI      string
	Duration float64 // seconds
}

// SequenceEntry is one clip's span within the concatenated timeline.
// The clip index is the entry's position in the sequence.
type SequenceEntry struct {
	Start float64
	End   float64
}

// BuildCutSequence folds an ordered clip list into contiguous timeline
// spans, one entry per clip. entries[i].End == entries[i+1].Start and
// entries[0].Start == 0.
func BuildCutSequence(clips []Clip) []SequenceEntry {
	entries := make([]SequenceEntry, 0, len(clips))
	var at float64
	for _, c := range clips {
		entries = append(entries, SequenceEntry{Start: at, End: at + c.Duration})
		at += c.Duration
	}
	return entries
}
