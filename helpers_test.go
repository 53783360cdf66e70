package parity_test

import (
	"testing"

	"github.com/keccakf/parity"
	"github.com/keccakf/parity/internal/testdata"
)

// laneSizes are the lane sizes of the seven standard Keccak-f variants.
var laneSizes = []int{1, 2, 4, 8, 16, 32, 64}

func laneMask(w int) uint64 {
	if w == 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

func randRows(d *testdata.DRBG, n int) []parity.RowValue {
	rows := make([]parity.RowValue, n)
	for i, b := range d.Data(n) {
		rows[i] = parity.RowValue(b & 0x1f)
	}
	return rows
}

func randSlices(d *testdata.DRBG, n int) []parity.SliceValue {
	slices := make([]parity.SliceValue, n)
	for z := range slices {
		slices[z] = parity.SliceValue(d.Uint64() & 0x1ffffff)
	}
	return slices
}

func randLaneState(d *testdata.DRBG, w int) parity.LaneState {
	var state parity.LaneState
	for x := range state {
		for y := range state[x] {
			state[x][y] = parity.LaneValue(d.Uint64() & laneMask(w))
		}
	}
	return state
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
