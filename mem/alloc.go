package mem

import "github.com/abmachine/memkit/internal/buf"

// Allocation is one contiguous simulated memory block: a byte buffer plus
// the relocation side-table that distinguishes pointer bytes from plain
// data. Allocations are owned exclusively by their Memory; the evaluator
// only ever holds Pointer values into them.
type Allocation struct {
	bytes   []byte
	relocs  relocTable
	defined *definedMask // nil unless undef tracking is enabled
}

// Len returns the size of the allocation in bytes.
func (a *Allocation) Len() uint64 { return uint64(len(a.bytes)) }

// Bytes returns the live backing buffer. Mutating it directly bypasses the
// relocation and definedness checks; checked access goes through Memory.
func (a *Allocation) Bytes() []byte { return a.bytes }

// Relocations returns a copy of the relocation records in offset order.
func (a *Allocation) Relocations() []Reloc { return a.relocs.all() }

// RelocationAt returns the relocation recorded exactly at off.
func (a *Allocation) RelocationAt(off uint64) (AllocID, bool) { return a.relocs.at(off) }

// checkBounds fails with ErrPointerOutOfBounds unless both start and end
// lie within [0, Len()]. It deliberately does not order start against end;
// callers derive end as start+size with overflow-checked addition, so a
// wrapped range can never reach here looking valid.
func (a *Allocation) checkBounds(start, end uint64) error {
	if start <= a.Len() && end <= a.Len() {
		return nil
	}
	return ErrPointerOutOfBounds
}

// countOverlappingRelocs counts relocation records whose pointer-sized span
// could intersect [start, end): the lower bound widens by one pointer width
// (saturating at zero) to catch a pointer that begins before start but
// extends into the range.
func (a *Allocation) countOverlappingRelocs(start, end, ptrSize uint64) int {
	lo := buf.SubSaturating(start, ptrSize-1)
	return a.relocs.countInRange(lo, end)
}

// checkNoRelocations is the strict guard used by the plain-data accessors:
// no recorded pointer may overlap [start, end) at all.
func (a *Allocation) checkNoRelocations(start, end, ptrSize uint64) error {
	if err := a.checkBounds(start, end); err != nil {
		return err
	}
	if a.countOverlappingRelocs(start, end, ptrSize) != 0 {
		return ErrReadPointerAsBytes
	}
	return nil
}

// checkRelocationEdges is the looser guard used by Copy and the pointer
// accessors. It probes only the two boundary points, so a whole pointer
// lying strictly inside the range passes while a pointer bisected by either
// edge fails. Copy depends on exactly this asymmetry to move embedded
// pointers intact.
func (a *Allocation) checkRelocationEdges(start, end, ptrSize uint64) error {
	if err := a.checkBounds(start, end); err != nil {
		return err
	}
	n := a.countOverlappingRelocs(start, start, ptrSize) +
		a.countOverlappingRelocs(end, end, ptrSize)
	if n != 0 {
		return ErrReadPointerAsBytes
	}
	return nil
}
