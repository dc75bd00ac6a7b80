// File: datablock.go
// Role: chunked entity arena with out-of-order allocation and tombstones.
//
// Layout:
//   - Storage is a list of fixed-size blocks; a slot address never moves
//     once its block exists, so *Entity handles stay valid across growth.
//   - Occupancy and tombstones are tracked in word bitmaps; a slot is live
//     iff occupied && !tombstoned.
//   - Deleted ids are appended to an ordered list at tombstoning time and
//     exposed verbatim to compaction consumers.
package core

import "fmt"

// blockCap is the number of entity slots per storage block. Growth appends
// whole blocks; existing entity addresses are never relocated.
const blockCap = 1024

// bitmap is a plain word-addressed bit set. Callers grow it explicitly
// before setting bits past the current length.
type bitmap []uint64

// grow extends b so that bit index n-1 is addressable.
func (b *bitmap) grow(n uint64) {
	words := int((n + 63) / 64)
	for len(*b) < words {
		*b = append(*b, 0)
	}
}

// set turns bit i on. i must be addressable.
func (b bitmap) set(i uint64) { b[i/64] |= 1 << (i % 64) }

// clear turns bit i off. i must be addressable.
func (b bitmap) clear(i uint64) { b[i/64] &^= 1 << (i % 64) }

// get reports bit i; bits past the current length read as false.
func (b bitmap) get(i uint64) bool {
	w := i / 64
	if w >= uint64(len(b)) {
		return false
	}
	return b[w]&(1<<(i%64)) != 0
}

// DataBlock is the entity arena for one entity kind (nodes or edges).
// It supports allocation and tombstoning at arbitrary caller-supplied ids,
// the access pattern of snapshot deserialization.
//
// Not safe for concurrent use; the load sequence is single-writer.
type DataBlock struct {
	blocks     [][]Entity // fixed-size blocks; slot id -> blocks[id/blockCap][id%blockCap]
	occupied   bitmap     // slot has been allocated
	tombstoned bitmap     // slot has been marked deleted
	deletedIDs []uint64   // tombstoned ids, in deletion order
	liveCount  int        // occupied && !tombstoned slots
}

// NewDataBlock returns an empty arena pre-sized for capHint slots.
// capHint is a hint only; the arena grows on demand past it.
// Complexity: O(capHint)
func NewDataBlock(capHint uint64) *DataBlock {
	d := &DataBlock{}
	if capHint > 0 {
		d.ensure(capHint - 1)
	}
	return d
}

// ensure grows storage and bitmaps so that slot id is addressable.
func (d *DataBlock) ensure(id uint64) {
	need := int(id/blockCap) + 1
	for len(d.blocks) < need {
		d.blocks = append(d.blocks, make([]Entity, blockCap))
	}
	n := uint64(len(d.blocks)) * blockCap
	d.occupied.grow(n)
	d.tombstoned.grow(n)
}

// slot returns the entity address for id. id must be addressable.
func (d *DataBlock) slot(id uint64) *Entity {
	return &d.blocks[id/blockCap][id%blockCap]
}

// live reports whether id currently holds a live entity.
func (d *DataBlock) live(id uint64) bool {
	return d.occupied.get(id) && !d.tombstoned.get(id)
}

// AllocateOutOfOrder creates a live slot at the caller-chosen id and
// returns its entity, growing the arena if id exceeds current capacity.
// The entity starts with zero properties. A tombstoned id may be
// re-allocated; a live id may not.
//
// Returns ErrAlreadyAllocated (wrapped with the offending id) if the slot
// is live — the caller must treat that as fatal.
// Complexity: amortized O(1)
func (d *DataBlock) AllocateOutOfOrder(id uint64) (*Entity, error) {
	d.ensure(id)
	if d.live(id) {
		return nil, fmt.Errorf("DataBlock.AllocateOutOfOrder(%d): %w", id, ErrAlreadyAllocated)
	}
	d.occupied.set(id)
	d.tombstoned.clear(id)
	en := d.slot(id)
	en.reset()
	d.liveCount++
	return en, nil
}

// MarkDeletedOutOfOrder tombstones id without compaction and appends it to
// the deleted-id list. The id need not have been allocated first: during
// deserialization, deleted ids arrive with no accompanying entity record.
// Tombstoning the same id again is a no-op (the list records each id once).
// Matrix cells referencing the id are untouched; cleanup belongs to a later
// compaction pass.
// Complexity: amortized O(1)
func (d *DataBlock) MarkDeletedOutOfOrder(id uint64) {
	d.ensure(id)
	if d.tombstoned.get(id) {
		return
	}
	if d.live(id) {
		d.liveCount--
	}
	d.tombstoned.set(id)
	d.deletedIDs = append(d.deletedIDs, id)
}

// Get returns the entity at id when the slot is live.
// Complexity: O(1)
func (d *DataBlock) Get(id uint64) (*Entity, bool) {
	if id >= d.Cap() || !d.live(id) {
		return nil, false
	}
	return d.slot(id), true
}

// DeletedIDs returns the tombstoned ids in deletion order. The slice is a
// read-only view of the arena's own list, not a copy.
// Complexity: O(1)
func (d *DataBlock) DeletedIDs() []uint64 { return d.deletedIDs }

// Cap returns the current slot capacity (highest addressable id + 1,
// rounded up to a whole block).
// Complexity: O(1)
func (d *DataBlock) Cap() uint64 { return uint64(len(d.blocks)) * blockCap }

// LiveCount returns the number of live (allocated, not tombstoned) slots.
// Complexity: O(1)
func (d *DataBlock) LiveCount() int { return d.liveCount }
