package entity

// RowSize is the number of lanes, and so the number of cars per row.
const RowSize = 3

// maxRedraws bounds the search for a pattern that differs from the previous
// row. A fair source almost never needs more than a handful.
const maxRedraws = 64

// Pattern records which cars of a row are enabled.
type Pattern [RowSize]bool

// Disabled returns how many cars in the pattern are disabled.
func (p Pattern) Disabled() int {
	n := 0
	for _, enabled := range p {
		if !enabled {
			n++
		}
	}
	return n
}

// rotate shifts the pattern one lane to the right, wrapping around.
func (p Pattern) rotate() Pattern {
	return Pattern{p[RowSize-1], p[0], p[1]}
}

// Row is three cars sharing a Z coordinate, one per lane.
type Row [RowSize]*GameObject

// Pattern returns the enabled flags of the row.
func (r Row) Pattern() Pattern {
	var p Pattern
	for i, car := range r {
		p[i] = car.Enabled
	}
	return p
}

func (r Row) apply(p Pattern) {
	for i, car := range r {
		car.Enabled = p[i]
	}
}

// DrawPattern disables one random lane and, one time in four, the lane to its
// right as well (wrapping). At least one lane is always open and at least one
// is always blocked.
func DrawPattern(rng Rand) Pattern {
	p := Pattern{true, true, true}
	lane := rng.IntN(RowSize)
	p[lane] = false
	if rng.IntN(4) == 0 {
		p[(lane+1)%RowSize] = false
	}
	return p
}

// ResetRow moves the row by offset (MoveForward semantics, so a negative
// offset sends it back), repaints every car and draws a new enabled pattern
// that differs from last. last is updated to the new pattern.
func ResetRow(row Row, offset float32, last *Pattern, rng Rand) {
	for _, car := range row {
		car.MoveForward(offset)
	}

	var p Pattern
	for attempt := 0; ; attempt++ {
		for _, car := range row {
			car.SetRandomColor(rng)
		}
		p = DrawPattern(rng)
		if p != *last {
			break
		}
		if attempt == maxRedraws {
			// Any pattern with both open and blocked lanes differs from its rotation.
			p = p.rotate()
			break
		}
	}

	row.apply(p)
	*last = p
}
