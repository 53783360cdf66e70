package parity

// Parity returns the column parity of the slice: bit x of the result is set iff an odd number of the five bits at
// (x, 0..4) are set. Bits of s above the 25 significant ones cannot reach the result.
func (s SliceValue) Parity() RowValue {
	return RowValue(s^(s>>5)^(s>>10)^(s>>15)^(s>>20)) & rowMask
}

// Row extracts row y of the slice.
func (s SliceValue) Row(y int) RowValue {
	checkRowIndex(y)
	return RowValue(s>>(5*y)) & rowMask
}

// SliceFromRows assembles a slice from its five rows, row y in bits [5y, 5y+5).
func SliceFromRows(rows *[5]RowValue) SliceValue {
	var s SliceValue
	for y, row := range rows {
		checkRow(row)
		s |= SliceValue(row) << (5 * y)
	}
	return s
}

// StatePackedParity reduces a slice-major state to its packed parity: slot z holds the parity of slices[z]. It panics
// if the state has more than MaxPackedSlices slices; wider states use StateParity.
func StatePackedParity(slices []SliceValue) PackedParity {
	checkSliceCount(len(slices))
	var pp PackedParity
	for z, s := range slices {
		pp |= PackedParity(s.Parity()) << (5 * z)
	}
	return pp
}

// StateParity reduces a slice-major state to slice-major parity, filling parity[z] with the parity of slices[z]. There
// is no cap on the lane size; parity must have exactly one element per slice.
func StateParity(slices []SliceValue, parity []RowValue) {
	if len(parity) != len(slices) {
		panic("parity: state and parity buffer lengths differ")
	}
	for z, s := range slices {
		parity[z] = s.Parity()
	}
}

func checkRowIndex(y int) {
	if y < 0 || y >= 5 {
		panic("parity: row index out of range")
	}
}
