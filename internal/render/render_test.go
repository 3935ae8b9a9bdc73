package render

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/cdown/internal/glyph"
	"github.com/hammamikhairi/cdown/internal/timer"
)

func TestClock(t *testing.T) {
	tests := []struct {
		name      string
		h, m, s   uint64
		showHours bool
		want      string
	}{
		{"zero", 0, 0, 0, false, "00:00"},
		{"padded", 0, 5, 9, false, "05:09"},
		{"two digit", 0, 59, 59, false, "59:59"},
		{"hours unpadded", 1, 1, 1, true, "1:01:01"},
		{"zero hours kept", 0, 0, 10, true, "0:00:10"},
		{"many hours", 123, 4, 5, true, "123:04:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.h, tt.m, tt.s, tt.showHours); got != tt.want {
				t.Fatalf("Clock = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText3661(t *testing.T) {
	if got := Text(timer.New(3661)); got != "1:01:01" {
		t.Fatalf("Text = %q, want 1:01:01", got)
	}
}

func TestHourSegmentSurvivesCountdown(t *testing.T) {
	tm := timer.New(3600)
	for tm.Remaining() > 10 {
		tm.Tick()
	}
	if got := Text(tm); got != "0:00:10" {
		t.Fatalf("Text = %q, want 0:00:10", got)
	}
}

func TestFrameShape(t *testing.T) {
	for _, n := range []uint64{0, 7, 65, 3599, 3600, 3661, 36000, 360000} {
		f := Render(timer.New(n))
		if len(f) != glyph.Height {
			t.Fatalf("frame has %d rows", len(f))
		}
		want := len([]rune(f[0]))
		for i, row := range f {
			if got := len([]rune(row)); got != want {
				t.Errorf("n=%d row %d width %d, want %d", n, i, got, want)
			}
		}
	}
}

func TestGlyphsWidthAndGaps(t *testing.T) {
	f := Glyphs("05")
	digit := glyph.Must('0').Width()
	if got, want := f.Width(), 2*digit+1; got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
	for i, row := range f {
		if r := []rune(row)[digit]; r != ' ' {
			t.Errorf("row %d gap column = %q, want space", i, r)
		}
	}
	if strings.HasSuffix(f[4], " ") {
		t.Errorf("no trailing gap expected after last glyph: %q", f[4])
	}
}

func TestGlyphsMatchTable(t *testing.T) {
	f := Glyphs("1")
	g := glyph.Must('1')
	for r := range f {
		if f[r] != g.Row(r, Fill) {
			t.Errorf("row %d = %q, want %q", r, f[r], g.Row(r, Fill))
		}
	}
}

func TestRenderWithHoursIsWider(t *testing.T) {
	digit := glyph.Must('0').Width()
	sep := glyph.Must(':').Width()

	short := Render(timer.New(59))
	if got, want := short.Width(), 4*digit+sep+4; got != want {
		t.Fatalf("mm:ss width = %d, want %d", got, want)
	}
	long := Render(timer.New(3661))
	if got, want := long.Width(), 5*digit+2*sep+6; got != want {
		t.Fatalf("h:mm:ss width = %d, want %d", got, want)
	}
}

func TestGlyphsPanicsOnUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Glyphs("1a")
}

func TestMargin(t *testing.T) {
	tests := []struct {
		available, content, want int
	}{
		{80, 20, 30},
		{81, 20, 30},
		{20, 20, 0},
		{10, 20, 0},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := Margin(tt.available, tt.content); got != tt.want {
			t.Errorf("Margin(%d, %d) = %d, want %d", tt.available, tt.content, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	got := Center(Rect{X: 1, Y: 1, W: 78, H: 22}, 11, 3)
	want := Rect{X: 1 + 33, Y: 1 + 9, W: 11, H: 3}
	if got != want {
		t.Fatalf("Center = %+v, want %+v", got, want)
	}

	clipped := Center(Rect{W: 4, H: 2}, 11, 3)
	if clipped != (Rect{W: 4, H: 2}) {
		t.Fatalf("clipped = %+v", clipped)
	}
}
