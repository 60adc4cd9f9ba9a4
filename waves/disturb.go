package waves

import "fmt"

// DisturbMargin is the smallest row or column index Disturb accepts.
// The impulse kernel reaches one cell out from its center, and the
// solver never updates the outermost ring, so the center must stay two
// cells clear of the edge for the ripple to propagate in every direction.
const DisturbMargin = 2

// Disturb applies a localized impulse of the given magnitude centered at
// (row, col): the full magnitude at the center and half at the four
// immediate neighbors, seeding an outward ripple on the next steps.
// The center must lie within [DisturbMargin, rows-1-DisturbMargin] x
// [DisturbMargin, cols-1-DisturbMargin]; anything else is a caller bug
// and panics. Disturb does not advance simulated time.
func (f *Field) Disturb(row, col int, magnitude float32) {
	if row < DisturbMargin || row >= f.rows-DisturbMargin ||
		col < DisturbMargin || col >= f.cols-DisturbMargin {
		panic(fmt.Sprintf("waves: disturbance at (%d,%d) outside safe region [%d,%d]x[%d,%d]",
			row, col, DisturbMargin, f.rows-1-DisturbMargin, DisturbMargin, f.cols-1-DisturbMargin))
	}

	h := f.h[f.curr]
	i := row*f.cols + col
	half := 0.5 * magnitude

	h[i] += magnitude
	h[i-1] += half
	h[i+1] += half
	h[i-f.cols] += half
	h[i+f.cols] += half

	f.normalsDirty = true
}
