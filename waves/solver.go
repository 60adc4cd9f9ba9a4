package waves

// Update advances the simulation by dt seconds of wall time. Elapsed time
// accumulates until a full fixed step is available; large or irregular
// frame deltas simply run more fixed steps rather than destabilizing the
// integration. Returns the number of fixed steps taken.
func (f *Field) Update(dt float32) int {
	f.accum += dt
	steps := 0
	for f.accum >= f.dt {
		f.step()
		f.accum -= f.dt
		steps++
	}
	return steps
}

// step applies the update recurrence once:
//
//	next = k1*curr + k2*prev + k3*(up + down + left + right)
//
// Only interior cells are touched; the boundary ring keeps its last
// written value. The result is written into the previous buffer, which
// then becomes current by flipping the parity index. Each cell's previous
// value is read before it is overwritten, so the write is safe in place.
func (f *Field) step() {
	curr := f.h[f.curr]
	prev := f.h[1-f.curr]

	for row := 1; row < f.rows-1; row++ {
		base := row * f.cols
		for col := 1; col < f.cols-1; col++ {
			i := base + col
			prev[i] = f.k1*curr[i] +
				f.k2*prev[i] +
				f.k3*(curr[i-f.cols]+curr[i+f.cols]+curr[i-1]+curr[i+1])
		}
	}

	f.curr = 1 - f.curr
	f.normalsDirty = true
}
