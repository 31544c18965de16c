package timeline

import "testing"

func testSequence() []SequenceEntry {
	return BuildCutSequence([]Clip{
		{URI: "a.mp4", Duration: 100},
		{URI: "b.mp4", Duration: 200},
		{URI: "c.mp4", Duration: 100},
	})
}

func TestLocateStart(t *testing.T) {
	seq := testSequence()

	tests := []struct {
		name         string
		t            float64
		wantIndex    int
		wantInto     float64
		wantDuration float64
	}{
		{name: "timeline origin", t: 0, wantIndex: 0, wantInto: 0, wantDuration: 100},
		{name: "interior of first clip", t: 40, wantIndex: 0, wantInto: 40, wantDuration: 60},
		{name: "boundary belongs to later clip", t: 100, wantIndex: 1, wantInto: 0, wantDuration: 200},
		{name: "interior of second clip", t: 150, wantIndex: 1, wantInto: 50, wantDuration: 150},
		{name: "last clip", t: 399, wantIndex: 2, wantInto: 99, wantDuration: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := LocateStart(seq, tc.t)
			if !ok {
				t.Fatalf("LocateStart(%v) not found", tc.t)
			}
			if c.ClipIndex != tc.wantIndex || c.TimeIntoClip != tc.wantInto || c.Duration != tc.wantDuration {
				t.Fatalf("LocateStart(%v) = %+v, want index %d into %v duration %v",
					tc.t, c, tc.wantIndex, tc.wantInto, tc.wantDuration)
			}
		})
	}
}

func TestLocateStart_NotFound(t *testing.T) {
	seq := testSequence()

	for _, ts := range []float64{400, 500, -1} {
		if _, ok := LocateStart(seq, ts); ok {
			t.Errorf("LocateStart(%v) found, want not found", ts)
		}
	}
}

func TestLocateEnd(t *testing.T) {
	seq := testSequence()

	tests := []struct {
		name         string
		t            float64
		wantIndex    int
		wantDuration float64
	}{
		{name: "interior of first clip", t: 60, wantIndex: 0, wantDuration: 60},
		{name: "boundary belongs to earlier clip", t: 100, wantIndex: 0, wantDuration: 100},
		{name: "interior of second clip", t: 250, wantIndex: 1, wantDuration: 150},
		{name: "end of timeline", t: 400, wantIndex: 2, wantDuration: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := LocateEnd(seq, tc.t)
			if !ok {
				t.Fatalf("LocateEnd(%v) not found", tc.t)
			}
			if c.ClipIndex != tc.wantIndex {
				t.Fatalf("LocateEnd(%v).ClipIndex = %d, want %d", tc.t, c.ClipIndex, tc.wantIndex)
			}
			if c.TimeIntoClip != 0 {
				t.Errorf("LocateEnd(%v).TimeIntoClip = %v, want 0", tc.t, c.TimeIntoClip)
			}
			if c.Duration != tc.wantDuration {
				t.Errorf("LocateEnd(%v).Duration = %v, want %v", tc.t, c.Duration, tc.wantDuration)
			}
		})
	}
}

func TestLocateEnd_NotFound(t *testing.T) {
	seq := testSequence()

	for _, ts := range []float64{0, 401, -5} {
		if _, ok := LocateEnd(seq, ts); ok {
			t.Errorf("LocateEnd(%v) found, want not found", ts)
		}
	}
}

// A cut fully interior to one clip must resolve both cursors to the
// same clip; that is the point of the asymmetric boundary predicates.
func TestLocate_InteriorCutSameClip(t *testing.T) {
	seq := testSequence()

	start, ok := LocateStart(seq, 110)
	if !ok {
		t.Fatal("start not found")
	}
	end, ok := LocateEnd(seq, 290)
	if !ok {
		t.Fatal("end not found")
	}
	if start.ClipIndex != end.ClipIndex {
		t.Fatalf("start clip %d != end clip %d", start.ClipIndex, end.ClipIndex)
	}
}

func TestEnumerateBetween(t *testing.T) {
	start := Cursor{ClipIndex: 0, TimeIntoClip: 20, Duration: 80}
	end := Cursor{ClipIndex: 3, TimeIntoClip: 0, Duration: 42}

	mids := EnumerateBetween(start, end)

	if len(mids) != 2 {
		t.Fatalf("len(mids) = %d, want 2", len(mids))
	}
	for i, m := range mids {
		if m.ClipIndex != i+1 {
			t.Errorf("mids[%d].ClipIndex = %d, want %d", i, m.ClipIndex, i+1)
		}
		if m.TimeIntoClip != 0 {
			t.Errorf("mids[%d].TimeIntoClip = %v, want 0", i, m.TimeIntoClip)
		}
		// Intermediate cursors reuse the end cursor's stored duration.
		if m.Duration != 42 {
			t.Errorf("mids[%d].Duration = %v, want 42", i, m.Duration)
		}
	}
}

func TestEnumerateBetween_Adjacent(t *testing.T) {
	start := Cursor{ClipIndex: 1}
	end := Cursor{ClipIndex: 2}

	if mids := EnumerateBetween(start, end); len(mids) != 0 {
		t.Fatalf("len(mids) = %d, want 0", len(mids))
	}
}
