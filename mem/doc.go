// Package mem implements the simulated, byte-addressable heap of an
// abstract-machine interpreter.
//
// # Overview
//
// The interpreter never touches host memory. Every allocation it works with
// is a plain byte buffer owned by a Memory table, and every load and store
// goes through checked accessors so that invalid programs fail with a
// precise error instead of silently corrupting state.
//
// Three checks back every access:
//
//   - Bounds: the requested byte range must lie inside the allocation.
//   - Liveness: the allocation id must still be present in the table.
//   - Provenance: bytes that encode a pointer are tracked in a relocation
//     side-table and may never be read or written as plain data, and plain
//     data may never be read back as a pointer.
//
// # Pointers and provenance
//
// A Pointer is an (AllocID, offset) pair, not an address. WritePtr records
// a relocation at the destination offset naming the target allocation;
// ReadPtr requires that record to be present, so integer bytes can never be
// laundered into a pointer. Copy moves whole embedded pointers between
// allocations, re-homing their relocation records, but refuses to slice a
// pointer in half at either edge of the copied range.
//
// # Usage
//
//	m := mem.New(mem.Options{})
//
//	p := m.Allocate(16)
//	if err := m.WriteUint(p, 42, 4); err != nil {
//	    return err
//	}
//
//	q := m.Allocate(8)
//	if err := m.WritePtr(p.Add(8), q); err != nil {
//	    return err
//	}
//
//	// Fails with ErrReadPointerAsBytes: offset 8 holds a pointer.
//	_, err := m.ReadInt(p.Add(8), 8)
//
// # Byte order and pointer width
//
// All multi-byte codecs on one Memory use the byte order and pointer width
// fixed at construction (Options.ByteOrder, Options.PointerSize). Mixing
// orders within one instance is not supported.
//
// # Thread safety
//
// Memory instances are not thread-safe. Callers must serialize access
// externally; the intended shape is one Memory per interpreter run.
package mem
