package domain

// Rect is a vertical span of the scroll area in rows. Regions always span the
// full width, so only the vertical extent matters.
type Rect struct {
	Y      int
	Height int
}

func (r Rect) Bottom() int { return r.Y + r.Height }

// Expand grows r by margin rows on both edges.
func (r Rect) Expand(margin int) Rect {
	return Rect{Y: r.Y - margin, Height: r.Height + 2*margin}
}

type Entry struct {
	Ratio        float64
	Intersecting bool
}

// Ratio is the fraction of region inside root. An empty region counts as
// fully visible when its position lies inside root.
func Ratio(region, root Rect) float64 {
	if region.Height <= 0 {
		if region.Y >= root.Y && region.Y <= root.Bottom() {
			return 1
		}
		return 0
	}
	top := max(region.Y, root.Y)
	bottom := min(region.Bottom(), root.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(region.Height)
}

// Region is the load latch of one deferred content slot. Loaded goes from
// false to true once and never back.
type Region struct {
	loaded  bool
	visible bool
}

// Report records an intersection report and reports whether it caused the
// transition to loaded.
func (r *Region) Report(e Entry) bool {
	r.visible = e.Intersecting
	if r.loaded || !e.Intersecting {
		return false
	}
	r.loaded = true
	return true
}

// Force loads the region without a report. It returns false when the region
// was already loaded.
func (r *Region) Force() bool {
	if r.loaded {
		return false
	}
	r.loaded = true
	r.visible = true
	return true
}

func (r Region) Loaded() bool  { return r.loaded }
func (r Region) Visible() bool { return r.visible }
