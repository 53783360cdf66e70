package parity

// SlicesToSheets transposes slice-major parity into sheet-major parity: bit x of paritySlices[z] becomes bit z of
// paritySheets[x]. The lane size is len(paritySlices), which must be in [1, 64]; paritySheets is overwritten in full.
func SlicesToSheets(paritySlices []RowValue, paritySheets *[5]LaneValue) {
	checkLaneSize(len(paritySlices))
	clear(paritySheets[:])
	for z, row := range paritySlices {
		checkRow(row)
		for x := range paritySheets {
			paritySheets[x] |= LaneValue(row>>x&1) << z
		}
	}
}

// SheetsToSlices transposes sheet-major parity back into slice-major parity: bit z of paritySheets[x] becomes bit x of
// paritySlices[z]. The lane size is len(paritySlices), which must be in [1, 64]; sheet bits at or above that width are
// ignored. It is the inverse of SlicesToSheets for a matching lane size.
func SheetsToSlices(paritySheets *[5]LaneValue, paritySlices []RowValue) {
	checkLaneSize(len(paritySlices))
	for z := range paritySlices {
		var row RowValue
		for x := range paritySheets {
			row |= RowValue(paritySheets[x]>>z&1) << x
		}
		paritySlices[z] = row
	}
}
