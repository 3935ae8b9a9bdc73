package render

// Margin returns the leading offset that centres content inside available
// cells. When the content does not fit the margin is zero; an odd
// remainder goes to the trailing side.
func Margin(available, content int) int {
	if available <= content {
		return 0
	}
	return (available - content) / 2
}

// Rect is an area on screen in cells.
type Rect struct {
	X, Y, W, H int
}

// Center places a w×h block in the middle of area, clipping it to the area
// when it is larger. Each axis is handled on its own.
func Center(area Rect, w, h int) Rect {
	return Rect{
		X: area.X + Margin(area.W, w),
		Y: area.Y + Margin(area.H, h),
		W: min(w, area.W),
		H: min(h, area.H),
	}
}
