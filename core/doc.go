// Package core defines the entity layer of the graph storage engine:
// the integer id types that double as matrix coordinates, the Entity
// property block, the Node and Edge handles, and the DataBlock arena
// that owns every entity slot.
//
// The DataBlock is built for bulk deserialization, where ids arrive in
// whatever order the snapshot stream presents them:
//
//   - AllocateOutOfOrder(id) creates a live slot at a caller-chosen id,
//     growing capacity on demand. Slot addresses are stable for the
//     lifetime of the block (storage is chunked, never relocated).
//   - MarkDeletedOutOfOrder(id) tombstones an id without compaction and
//     records it in an append-only, deletion-ordered list.
//   - DeletedIDs() exposes that list verbatim for downstream compaction.
//
// Id uniqueness is the DataBlock's contract: allocating a live id twice
// is reported as ErrAlreadyAllocated, and the caller (the load driver)
// is expected to abort rather than continue with corrupted storage.
//
// The package performs no locking: the storage core is specified as
// single-writer for the whole load sequence.
package core
