package parity

// SlicesFromLanes re-slices a lane-major state into slice-major form: bit z of the lane at (x, y) becomes bit x+5y of
// slices[z]. The lane size is len(slices), which must be in [1, 64]; lane bits at or above that width are ignored.
func SlicesFromLanes(state *LaneState, slices []SliceValue) {
	checkLaneSize(len(slices))
	for z := range slices {
		var s SliceValue
		for x := range state {
			for y := range state[x] {
				s |= SliceValue(state[x][y]>>z&1) << (x + 5*y)
			}
		}
		slices[z] = s
	}
}

// LanesFromSlices re-slices a slice-major state into lane-major form, the inverse of SlicesFromLanes for a matching
// lane size. The lane size is len(slices), which must be in [1, 64]; state is overwritten in full.
func LanesFromSlices(slices []SliceValue, state *LaneState) {
	checkLaneSize(len(slices))
	*state = LaneState{}
	for z, s := range slices {
		for x := range state {
			for y := range state[x] {
				state[x][y] |= LaneValue(s>>(x+5*y)&1) << z
			}
		}
	}
}
