package game

// Bounds is the axis-aligned rectangle an entity is allowed to occupy.
// The screen owns its bounds and hands them to entities at creation.
type Bounds struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Valid reports whether the rectangle has positive extent on both axes.
func (b Bounds) Valid() bool {
	return b.Right > b.Left && b.Bottom > b.Top
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
