// Package core_test contains unit tests for the DataBlock entity arena:
// out-of-order allocation, tombstoning, deleted-id ordering, and growth.
package core_test

import (
	"testing"

	"github.com/grixdb/grix/core"
	"github.com/stretchr/testify/require"
)

// TestAllocateOutOfOrder verifies that slots can be created at arbitrary,
// non-sequential ids and remain independently addressable.
func TestAllocateOutOfOrder(t *testing.T) {
	d := core.NewDataBlock(0) // start with an empty arena

	for _, id := range []uint64{5, 0, 3} { // deliberately out of order
		en, err := d.AllocateOutOfOrder(id)
		require.NoError(t, err)         // allocation at a fresh id must succeed
		require.NotNil(t, en)           // a usable entity slot is returned
		require.Zero(t, en.PropCount()) // fresh entities carry no properties
	}

	require.Equal(t, 3, d.LiveCount()) // exactly the three allocated slots are live

	for _, id := range []uint64{5, 0, 3} {
		_, ok := d.Get(id)
		require.True(t, ok, "id %d must be live", id)
	}
	_, ok := d.Get(1) // id 1 was skipped
	require.False(t, ok)
}

// TestAllocateTwiceFails ensures double allocation of a live id is reported
// as ErrAlreadyAllocated rather than silently aliasing the slot.
func TestAllocateTwiceFails(t *testing.T) {
	d := core.NewDataBlock(0)

	_, err := d.AllocateOutOfOrder(7)
	require.NoError(t, err)

	_, err = d.AllocateOutOfOrder(7)                  // same id, still live
	require.ErrorIs(t, err, core.ErrAlreadyAllocated) // must surface the sentinel
	require.Equal(t, 1, d.LiveCount())                // failed allocation changes nothing
}

// TestReallocateTombstonedSlot verifies that a tombstoned id may be
// allocated again and starts from a clean property block.
func TestReallocateTombstonedSlot(t *testing.T) {
	d := core.NewDataBlock(0)

	en, err := d.AllocateOutOfOrder(2)
	require.NoError(t, err)
	en.AddProperty(0, "stale") // dirty the slot before deletion

	d.MarkDeletedOutOfOrder(2)
	require.Equal(t, 0, d.LiveCount())

	en2, err := d.AllocateOutOfOrder(2) // reuse the tombstoned id
	require.NoError(t, err)
	require.Zero(t, en2.PropCount()) // re-allocation resets the property block
	require.Equal(t, 1, d.LiveCount())
}

// TestDeletedIDsOrder asserts the deleted-id list preserves deletion order
// and that tombstoning leaves unrelated slots untouched.
func TestDeletedIDsOrder(t *testing.T) {
	d := core.NewDataBlock(0)

	for _, id := range []uint64{10, 11, 12} {
		_, err := d.AllocateOutOfOrder(id)
		require.NoError(t, err)
	}

	d.MarkDeletedOutOfOrder(12) // delete in a different order than allocation
	d.MarkDeletedOutOfOrder(10)

	require.Equal(t, []uint64{12, 10}, d.DeletedIDs()) // deletion order, not id order
	require.Equal(t, 1, d.LiveCount())

	_, ok := d.Get(11) // the survivor is unaffected
	require.True(t, ok)
	_, ok = d.Get(12)
	require.False(t, ok)
}

// TestMarkDeletedWithoutAllocation covers the deserialization case where a
// deleted id arrives with no entity record at all.
func TestMarkDeletedWithoutAllocation(t *testing.T) {
	d := core.NewDataBlock(0)

	d.MarkDeletedOutOfOrder(99) // never allocated
	d.MarkDeletedOutOfOrder(99) // idempotent: recorded once

	require.Equal(t, []uint64{99}, d.DeletedIDs())
	require.Equal(t, 0, d.LiveCount())
	require.GreaterOrEqual(t, d.Cap(), uint64(100)) // the arena grew to cover the id
}

// TestGrowthKeepsSlotAddressesStable ensures growth never relocates an
// existing entity: pointers handed out earlier must stay valid.
func TestGrowthKeepsSlotAddressesStable(t *testing.T) {
	d := core.NewDataBlock(0)

	early, err := d.AllocateOutOfOrder(1)
	require.NoError(t, err)
	early.AddProperty(4, int64(42))

	_, err = d.AllocateOutOfOrder(1 << 16) // force several new blocks
	require.NoError(t, err)

	got, ok := d.Get(1)
	require.True(t, ok)
	require.Same(t, early, got)          // same address after growth
	require.Equal(t, 1, got.PropCount()) // contents intact
	require.Equal(t, core.AttrID(4), got.Properties()[0].Attr)
	require.Equal(t, int64(42), got.Properties()[0].Value)
}

// TestCapacityHint verifies the constructor pre-sizes the arena.
func TestCapacityHint(t *testing.T) {
	d := core.NewDataBlock(5000)
	require.GreaterOrEqual(t, d.Cap(), uint64(5000))
	require.Equal(t, 0, d.LiveCount()) // pre-sizing allocates nothing
}
