package domain

// View is everything a display needs for one redraw: the block-digit rows,
// whether the pause overlay is visible, and enough timing to label the
// window and draw progress.
type View struct {
	Rows      []string
	Width     int    // cells in the widest row
	Clock     string // plain-text clock, e.g. "1:01:01" or "04:59"
	Paused    bool
	Finished  bool
	Remaining uint64
	Elapsed   uint64
	Total     uint64
}

// Progress returns the elapsed fraction in [0, 1].
func (v View) Progress() float64 {
	if v.Total == 0 || v.Elapsed >= v.Total {
		return 1
	}
	return float64(v.Elapsed) / float64(v.Total)
}
