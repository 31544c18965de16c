package timeline

// Cursor is a resolved position in the cut sequence: which clip a
// timestamp falls in, the offset into that clip, and a duration whose
// meaning depends on which lookup produced it (remaining time for a
// start cursor, consumed time for an end cursor).
type Cursor struct {
	ClipIndex    int
	TimeIntoClip float64
	Duration     float64
}

// containsStart reports whether e holds timestamp t when t opens a cut.
// A timestamp exactly on the boundary between two clips belongs to the
// later clip.
func containsStart(e SequenceEntry, t float64) bool {
	return t >= e.Start && t < e.End
}

// containsEnd reports whether e holds timestamp t when t closes a cut.
// A timestamp exactly on the boundary belongs to the earlier clip, so a
// cut ending at a clip boundary does not pull in the next clip.
func containsEnd(e SequenceEntry, t float64) bool {
	return t > e.Start && t <= e.End
}

// LocateStart resolves a cut's opening timestamp. The cursor duration
// is the time remaining in the clip from t. Returns false when t falls
// outside every entry.
func LocateStart(seq []SequenceEntry, t float64) (Cursor, bool) {
	for i, e := range seq {
		if !containsStart(e, t) {
			continue
		}
		remaining := e.End - t
		if full := e.End - e.Start; full < remaining {
			remaining = full
		}
		return Cursor{ClipIndex: i, TimeIntoClip: t - e.Start, Duration: remaining}, true
	}
	return Cursor{}, false
}

// LocateEnd resolves a cut's closing timestamp. The cursor duration is
// the portion of the clip consumed up to t. Returns false when t falls
// outside every entry.
func LocateEnd(seq []SequenceEntry, t float64) (Cursor, bool) {
	for i, e := range seq {
		if !containsEnd(e, t) {
			continue
		}
		return Cursor{ClipIndex: i, TimeIntoClip: 0, Duration: t - e.Start}, true
	}
	return Cursor{}, false
}

// EnumerateBetween returns a cursor for every clip strictly between the
// start and end cursors, each starting at offset 0. Intermediate clips
// are assumed consumed in full; their duration is taken from the end
// cursor's stored duration, matching the behavior of existing exports.
func EnumerateBetween(start, end Cursor) []Cursor {
	var mids []Cursor
	for i := start.ClipIndex + 1; i < end.ClipIndex; i++ {
		mids = append(mids, Cursor{ClipIndex: i, TimeIntoClip: 0, Duration: end.Duration})
	}
	return mids
}
