package parity

// StateParitySheets reduces a lane-major state directly to sheet-major parity: parity[x] is the XOR of the five lanes
// of sheet x. It computes the same 5w parity bits as StateParity on the re-sliced state followed by SlicesToSheets,
// without ever slicing.
func StateParitySheets(state *LaneState, parity *[5]LaneValue) {
	for x := range state {
		sheet := &state[x]
		parity[x] = sheet[0] ^ sheet[1] ^ sheet[2] ^ sheet[3] ^ sheet[4]
	}
}
