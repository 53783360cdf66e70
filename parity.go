// Package parity implements the column-parity algebra of the Keccak-f permutation family's 5×5×w state. Parity — the
// XOR of the five bits in a column — is the only quantity the θ diffusion step needs per state bit, and it is the
// quantity differential/linear trail-search tools enumerate without ever materializing a full state.
//
// The package converts parity losslessly between three representations: slice-major (one RowValue per z-slice),
// sheet-major (one LaneValue per x-sheet), and a packed single-word encoding of up to 8 per-slice parities for the
// smallest state widths. The slice-major and sheet-major forms carry the same 5w bits on different axes; which one a
// caller wants depends on whether the surrounding permutation code is row-oriented or lane-oriented.
//
// Every function is a pure transform over value types: inputs are read-only snapshots, outputs are returned values or
// caller-owned buffers, and no call touches shared state. Any number of goroutines may call into the package
// concurrently. Precondition violations (a slot index or slice count outside the packed encoding's 8-slot envelope, a
// row value above 31, mismatched buffer lengths) panic rather than silently truncating.
package parity

import (
	"encoding/binary"
	"encoding/hex"
)

// MaxPackedSlices is the number of 5-bit slots in a PackedParity. The cap matches the smallest standard lane size
// (w = 8): a packed word holds the full parity of a Keccak-f[200] state and nothing wider.
const MaxPackedSlices = 8

const rowMask = 0x1f

// A RowValue holds 5 bits indexed by x, either one row of a slice or a parity (an XOR of rows). Values above 31 are
// out of contract.
type RowValue uint8

// A SliceValue holds one z-layer cross-section of the state in its low 25 bits; row y occupies bits [5y, 5y+5).
type SliceValue uint32

// A LaneValue holds all bits at a fixed (x, y) across every z, one bit per slice. Lane sizes up to 64 are supported.
type LaneValue uint64

// A LaneState is a full lane-major state, indexed [x][y]; state[x] is the sheet at x.
type LaneState [5][5]LaneValue

// A PackedParity holds up to MaxPackedSlices per-slice parities in one word; the parity of slice z occupies bits
// [5z, 5z+5).
type PackedParity uint64

// PackRow returns a PackedParity carrying row in slot z and zero everywhere else.
func PackRow(row RowValue, z int) PackedParity {
	checkSlot(z)
	checkRow(row)
	return PackedParity(row) << (5 * z)
}

// Row extracts the parity in slot z. Bits outside the slot never influence the result.
func (pp PackedParity) Row(z int) RowValue {
	checkSlot(z)
	return RowValue(pp>>(5*z)) & rowMask
}

// PackParity packs the per-slice parities rows[0..L) into a single word, slice z in slot z. It panics if rows is
// longer than MaxPackedSlices.
func PackParity(rows []RowValue) PackedParity {
	checkSliceCount(len(rows))
	var pp PackedParity
	for z, row := range rows {
		checkRow(row)
		pp |= PackedParity(row) << (5 * z)
	}
	return pp
}

// UnpackParity fills parity[z] with the slot-z value of pp for every z. The length of parity is the lane size the
// packed word was built for; it panics if that length exceeds MaxPackedSlices.
func UnpackParity(pp PackedParity, parity []RowValue) {
	checkSliceCount(len(parity))
	for z := range parity {
		parity[z] = RowValue(pp>>(5*z)) & rowMask
	}
}

// String renders the packed word as fixed-width hex.
func (pp PackedParity) String() string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(pp))
	return hex.EncodeToString(b[:])
}

func checkSlot(z int) {
	if z < 0 || z >= MaxPackedSlices {
		panic("parity: packed slot out of range")
	}
}

func checkSliceCount(n int) {
	if n > MaxPackedSlices {
		panic("parity: slice count exceeds packed capacity")
	}
}

func checkRow(row RowValue) {
	if row > rowMask {
		panic("parity: row value out of range")
	}
}

func checkLaneSize(w int) {
	if w < 1 || w > 64 {
		panic("parity: lane size out of range")
	}
}
