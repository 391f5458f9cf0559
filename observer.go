package folio

// Observer watches document-space rectangles and reports each one once, the
// first time enough of it is inside the viewport. It plays the role of an
// intersection observer with a single bottom root margin.
type Observer struct {
	// Threshold is the fraction of the element that must be visible, in [0, 1].
	Threshold float64
	// MarginBottom grows (positive) or shrinks (negative) the viewport's
	// bottom edge before testing.
	MarginBottom float64

	bounds  []Rect
	pending []bool
	left    int
}

// Observe registers an element and returns its index.
func (o *Observer) Observe(r Rect) int {
	o.bounds = append(o.bounds, r)
	o.pending = append(o.pending, true)
	o.left++
	return len(o.bounds) - 1
}

// SetBounds replaces the rectangle of element i, e.g. after a relayout.
func (o *Observer) SetBounds(i int, r Rect) {
	if i >= 0 && i < len(o.bounds) {
		o.bounds[i] = r
	}
}

// Unobserve stops watching element i without reporting it.
func (o *Observer) Unobserve(i int) {
	if i >= 0 && i < len(o.pending) && o.pending[i] {
		o.pending[i] = false
		o.left--
	}
}

// Pending returns how many elements have not been reported yet.
func (o *Observer) Pending() int {
	return o.left
}

// Check tests every pending element against the viewport [scrollY,
// scrollY+viewH) and calls fn(index, order) for each newly visible one.
// order counts hits within this call, starting at 0, for staggering.
func (o *Observer) Check(scrollY, viewH float64, fn func(index, order int)) {
	if o.left == 0 {
		return
	}
	top := scrollY
	bottom := scrollY + viewH + o.MarginBottom
	order := 0
	for i, r := range o.bounds {
		if !o.pending[i] {
			continue
		}
		if IntersectionRatio(r, top, bottom) < o.Threshold || !overlaps(r, top, bottom) {
			continue
		}
		o.pending[i] = false
		o.left--
		fn(i, order)
		order++
	}
}

func overlaps(r Rect, top, bottom float64) bool {
	return r.Y < bottom && r.Y+r.Height > top || r.Height <= 0 && r.Y >= top && r.Y < bottom
}

// IntersectionRatio returns the visible fraction of r's height between top
// and bottom. Zero-height elements count as fully visible when their top lies
// in the range.
func IntersectionRatio(r Rect, top, bottom float64) float64 {
	if bottom <= top {
		return 0
	}
	if r.Height <= 0 {
		if r.Y >= top && r.Y < bottom {
			return 1
		}
		return 0
	}
	lo := max(r.Y, top)
	hi := min(r.Y+r.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / r.Height
}
