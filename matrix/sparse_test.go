// Package matrix_test contains unit tests for the sparse primitives:
// presence-aware point-wise access, the diagonal/column projection pair,
// and the forward/transpose pairing invariant.
package matrix_test

import (
	"testing"

	"github.com/grixdb/grix/matrix"
	"github.com/stretchr/testify/require"
)

// TestExtractDistinguishesAbsentFromZero is the load-bearing contract:
// a present cell holding the zero value must not read as absent.
func TestExtractDistinguishesAbsentFromZero(t *testing.T) {
	m := matrix.NewSparse[uint64]()

	_, ok := m.Extract(0, 1) // nothing stored yet
	require.False(t, ok)

	m.Set(0, 1, 0) // edge id 0 is a legitimate payload

	v, ok := m.Extract(0, 1)
	require.True(t, ok)            // the cell is present
	require.Equal(t, uint64(0), v) // and holds the zero value
	require.Equal(t, 1, m.NNZ())
}

// TestSetOverwriteAndDelete covers overwrite semantics and cell removal.
func TestSetOverwriteAndDelete(t *testing.T) {
	m := matrix.NewSparse[bool]()

	m.Set(3, 4, true)
	m.Set(3, 4, false) // overwrite in place, still present

	v, ok := m.Extract(3, 4)
	require.True(t, ok)
	require.False(t, v)
	require.Equal(t, 1, m.NNZ())

	m.Delete(3, 4)
	_, ok = m.Extract(3, 4)
	require.False(t, ok)
	require.Equal(t, 0, m.NNZ())
}

// TestDiagonal verifies dense extraction of the boolean diagonal,
// ignoring off-diagonal cells and false diagonal entries.
func TestDiagonal(t *testing.T) {
	m := matrix.NewSparse[bool]()
	m.Set(0, 0, true)
	m.Set(2, 2, true)
	m.Set(3, 3, false) // present but false: not part of the diagonal view
	m.Set(1, 2, true)  // off-diagonal: ignored

	got := matrix.Diagonal(m, 5)
	require.Equal(t, []bool{true, false, true, false, false}, got)
}

// TestAssignColumnMasked checks that only true vector entries are written
// and pre-existing target cells outside the mask survive.
func TestAssignColumnMasked(t *testing.T) {
	dst := matrix.NewSparse[bool]()
	dst.Set(1, 0, true) // unrelated column, must survive

	matrix.AssignColumn(dst, []bool{true, false, true}, 2)

	v, ok := dst.Extract(0, 2)
	require.True(t, ok)
	require.True(t, v)

	_, ok = dst.Extract(1, 2) // masked out: stays absent, not "present false"
	require.False(t, ok)

	v, ok = dst.Extract(2, 2)
	require.True(t, ok)
	require.True(t, v)

	v, ok = dst.Extract(1, 0) // untouched by the column write
	require.True(t, ok)
	require.True(t, v)
}

// TestBidirectionalMirror asserts the pairing invariant: every Set is
// observable at the swapped coordinates of the transpose, with no way to
// write one side only through the public mutator.
func TestBidirectionalMirror(t *testing.T) {
	b := matrix.NewBidirectional[uint64]()

	pairs := [][2]uint64{{0, 1}, {7, 7}, {5, 2}}
	for i, p := range pairs {
		b.Set(p[0], p[1], uint64(i))
	}

	for i, p := range pairs {
		fwd, ok := b.Extract(p[0], p[1])
		require.True(t, ok)
		require.Equal(t, uint64(i), fwd)

		mir, ok := b.ExtractTranspose(p[1], p[0]) // swapped coordinates
		require.True(t, ok)
		require.Equal(t, fwd, mir) // bit-identical under swap
	}

	require.Equal(t, len(pairs), b.NNZ())
	require.Equal(t, b.Forward().NNZ(), b.Transpose().NNZ())
}
