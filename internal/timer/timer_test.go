package timer

import "testing"

func TestNewDefaults(t *testing.T) {
	tm := New(90)
	if tm.Remaining() != 90 || tm.Initial() != 90 {
		t.Fatalf("remaining=%d initial=%d, want 90/90", tm.Remaining(), tm.Initial())
	}
	if tm.IsPaused() {
		t.Fatal("new timer should be running")
	}
	if tm.ShowHours() {
		t.Fatal("90s timer should not show hours")
	}
}

func TestShowHoursThreshold(t *testing.T) {
	tests := []struct {
		initial uint64
		want    bool
	}{
		{0, false},
		{3599, false},
		{3600, true},
		{3661, true},
	}
	for _, tt := range tests {
		if got := New(tt.initial).ShowHours(); got != tt.want {
			t.Errorf("New(%d).ShowHours() = %v, want %v", tt.initial, got, tt.want)
		}
	}
}

func TestShowHoursFixedAtConstruction(t *testing.T) {
	tm := New(3600)
	for tm.Remaining() > 10 {
		tm.Tick()
	}
	if !tm.ShowHours() {
		t.Fatal("hour segment must survive remaining dropping below an hour")
	}
	if h, _, _ := tm.HMS(); h != 0 {
		t.Fatalf("hours = %d, want 0", h)
	}
}

func TestTickCountsDownToZero(t *testing.T) {
	for _, n := range []uint64{0, 1, 5, 59, 60, 61, 3601} {
		tm := New(n)
		for i := uint64(0); i < n; i++ {
			tm.Tick()
		}
		if tm.Remaining() != 0 {
			t.Errorf("New(%d) after %d ticks: remaining=%d", n, n, tm.Remaining())
		}
		if !tm.Done() {
			t.Errorf("New(%d) should be done", n)
		}
		if tm.Elapsed() != n {
			t.Errorf("New(%d).Elapsed() = %d", n, tm.Elapsed())
		}
	}
}

func TestTickSaturatesAtZero(t *testing.T) {
	tm := New(1)
	tm.Tick()
	tm.Tick()
	if tm.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", tm.Remaining())
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	tm := New(10)
	tm.Toggle()
	if !tm.IsPaused() {
		t.Fatal("expected paused after one toggle")
	}
	tm.Toggle()
	if tm.IsPaused() {
		t.Fatal("expected running after two toggles")
	}
	if tm.Remaining() != 10 {
		t.Fatalf("toggle changed remaining to %d", tm.Remaining())
	}
}

func TestNoTicksWhilePaused(t *testing.T) {
	tm := New(10)
	tm.Toggle()
	for i := 0; i < 25; i++ {
		tm.Tick()
	}
	if tm.Remaining() != 10 {
		t.Fatalf("remaining = %d while paused, want 10", tm.Remaining())
	}
	tm.Toggle()
	tm.Tick()
	if tm.Remaining() != 9 {
		t.Fatalf("remaining = %d after resume, want 9", tm.Remaining())
	}
}

func TestHMSRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 59, 60, 61, 599, 3599, 3600, 3661, 86399, 86400, 360000, 1<<40 + 17}
	for _, n := range values {
		h, m, s := New(n).HMS()
		if h*3600+m*60+s != n {
			t.Errorf("HMS(%d) = %d,%d,%d does not round-trip", n, h, m, s)
		}
		if m >= 60 || s >= 60 {
			t.Errorf("HMS(%d) = %d,%d,%d out of range", n, h, m, s)
		}
	}
}

func TestHMS3661(t *testing.T) {
	h, m, s := New(3661).HMS()
	if h != 1 || m != 1 || s != 1 {
		t.Fatalf("HMS = %d,%d,%d, want 1,1,1", h, m, s)
	}
}
