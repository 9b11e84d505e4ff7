package mem

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/abmachine/memkit/internal/buf"
)

// DefaultPointerSize is the pointer width used when Options.PointerSize is
// zero: 8 bytes, a 64-bit simulated machine.
const DefaultPointerSize = 8

// Options controls Memory construction. The zero value gives a 64-bit
// little-endian machine without undef tracking.
type Options struct {
	// PointerSize is the width in bytes of pointers and of the
	// pointer-sized integer accessors (ReadUsize, WriteIsize, ...).
	// Accepted values are 2, 4 and 8. Default: 8.
	PointerSize uint64

	// ByteOrder is the byte order applied by every multi-byte codec on
	// this Memory. Fixed for the lifetime of the instance.
	// Default: binary.LittleEndian.
	ByteOrder binary.ByteOrder

	// TrackUndef enables a per-allocation definedness bitmap. When set,
	// reading bytes that were never written fails with ErrReadUndefBytes
	// instead of returning zeros. Default: false.
	TrackUndef bool
}

// Memory owns every live allocation of one interpreter run, keyed by
// AllocID, and exposes the checked read/write/copy surface the evaluator
// drives. Not safe for concurrent use; see the package documentation.
type Memory struct {
	allocs     map[AllocID]*Allocation
	nextID     AllocID
	ptrSize    uint64
	order      binary.ByteOrder
	trackUndef bool
}

// New builds an empty Memory with defaults applied for zero Options
// fields. It panics on a PointerSize outside {2, 4, 8}; that is a
// programmer error in interpreter setup, not a runtime condition.
func New(opts Options) *Memory {
	if opts.PointerSize == 0 {
		opts.PointerSize = DefaultPointerSize
	}
	if opts.PointerSize != 2 && opts.PointerSize != 4 && opts.PointerSize != 8 {
		panic(fmt.Sprintf("mem: invalid pointer size %d", opts.PointerSize))
	}
	if opts.ByteOrder == nil {
		opts.ByteOrder = binary.LittleEndian
	}
	return &Memory{
		allocs:     make(map[AllocID]*Allocation),
		ptrSize:    opts.PointerSize,
		order:      opts.ByteOrder,
		trackUndef: opts.TrackUndef,
	}
}

// PointerSize returns the configured pointer width in bytes.
func (m *Memory) PointerSize() uint64 { return m.ptrSize }

// ByteOrder returns the configured byte order.
func (m *Memory) ByteOrder() binary.ByteOrder { return m.order }

// Allocate creates a zero-filled allocation of size bytes with no
// relocations, registers it under a fresh id, and returns a pointer to its
// start. It never fails; a zero size yields a valid empty allocation.
func (m *Memory) Allocate(size uint64) Pointer {
	a := &Allocation{bytes: make([]byte, size)}
	if m.trackUndef {
		a.defined = newDefinedMask(size)
	}
	id := m.nextID
	m.nextID++
	m.allocs[id] = a
	return Pointer{Alloc: id}
}

// Free removes the allocation named by id from the table. Every later
// access through a pointer into it fails with ErrDanglingPointer, as does
// a second Free of the same id. Ids are never reissued.
func (m *Memory) Free(id AllocID) error {
	if _, ok := m.allocs[id]; !ok {
		return ErrDanglingPointer
	}
	delete(m.allocs, id)
	return nil
}

// Get returns the live allocation named by id, or ErrDanglingPointer.
// All checked accessors route through here.
func (m *Memory) Get(id AllocID) (*Allocation, error) {
	a, ok := m.allocs[id]
	if !ok {
		return nil, ErrDanglingPointer
	}
	return a, nil
}

// AllocIDs returns the ids of all live allocations in ascending order.
func (m *Memory) AllocIDs() []AllocID {
	ids := make([]AllocID, 0, len(m.allocs))
	for id := range m.allocs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Bytes returns the live byte range [p.Off, p.Off+size) as plain data: the
// range must hold no relocation, or the access fails with
// ErrReadPointerAsBytes. The returned slice aliases the allocation buffer
// (zero-copy); callers mutating through it must go through WriteBytes
// instead when undef tracking matters.
func (m *Memory) Bytes(p Pointer, size uint64) ([]byte, error) {
	a, end, err := m.resolveData(p, size)
	if err != nil {
		return nil, err
	}
	if a.defined != nil && !a.defined.allDefined(p.Off, end) {
		return nil, ErrReadUndefBytes
	}
	return a.bytes[p.Off:end], nil
}

// bytesMut is the write-side counterpart of Bytes: same strict relocation
// guard, but it marks the range defined rather than requiring it.
func (m *Memory) bytesMut(p Pointer, size uint64) ([]byte, error) {
	a, end, err := m.resolveData(p, size)
	if err != nil {
		return nil, err
	}
	if a.defined != nil {
		a.defined.setRange(p.Off, end)
	}
	return a.bytes[p.Off:end], nil
}

// resolveData locates the allocation and runs the bounds and strict
// no-relocation checks shared by both data accessors.
func (m *Memory) resolveData(p Pointer, size uint64) (*Allocation, uint64, error) {
	a, err := m.Get(p.Alloc)
	if err != nil {
		return nil, 0, err
	}
	end, ok := buf.AddOverflowSafe(p.Off, size)
	if !ok {
		return nil, 0, ErrPointerOutOfBounds
	}
	if err := a.checkNoRelocations(p.Off, end, m.ptrSize); err != nil {
		return nil, 0, err
	}
	return a, end, nil
}

// WriteBytes stores data as plain bytes at p. The destination range must
// not currently hold any pointer.
func (m *Memory) WriteBytes(p Pointer, data []byte) error {
	b, err := m.bytesMut(p, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}

// Copy copies size bytes from src to dest and re-homes every relocation
// whose offset lies fully inside the source range, shifting each by
// dest.Off-src.Off into the destination's side-table. A relocation bisected
// by either source edge fails the copy with ErrReadPointerAsBytes, as does
// any relocation overlapping the destination range. Overlapping ranges
// within one allocation behave like a snapshot-then-write move.
//
// No state changes until every precondition has passed: a failed Copy
// leaves both allocations untouched.
func (m *Memory) Copy(src, dest Pointer, size uint64) error {
	srcAlloc, err := m.Get(src.Alloc)
	if err != nil {
		return err
	}
	srcEnd, ok := buf.AddOverflowSafe(src.Off, size)
	if !ok {
		return ErrPointerOutOfBounds
	}
	if err := srcAlloc.checkRelocationEdges(src.Off, srcEnd, m.ptrSize); err != nil {
		return err
	}

	relocs := srcAlloc.relocs.inRange(src.Off, srcEnd)

	var srcDefined []bool
	if srcAlloc.defined != nil {
		srcDefined = srcAlloc.defined.snapshot(src.Off, srcEnd)
	}

	// Strict check on the destination: copying onto live pointer bytes is
	// refused rather than silently clearing their provenance.
	destBytes, err := m.bytesMut(dest, size)
	if err != nil {
		return err
	}

	// copy is memmove; overlapping ranges within one allocation are safe.
	copy(destBytes, srcAlloc.bytes[src.Off:srcEnd])

	destAlloc, err := m.Get(dest.Alloc)
	if err != nil {
		return err
	}
	if destAlloc.defined != nil {
		destAlloc.defined.apply(dest.Off, srcDefined)
	}
	for _, r := range relocs {
		destAlloc.relocs.insert(r.Off-src.Off+dest.Off, r.Target)
	}
	return nil
}

// ReadPtr reads the pointer stored at p. The pointer-sized range may not
// bisect another relocation, and the offset slot itself must carry a
// relocation record; bytes that merely look numeric fail with
// ErrReadBytesAsPointer.
func (m *Memory) ReadPtr(p Pointer) (Pointer, error) {
	a, err := m.Get(p.Alloc)
	if err != nil {
		return Pointer{}, err
	}
	end, ok := buf.AddOverflowSafe(p.Off, m.ptrSize)
	if !ok {
		return Pointer{}, ErrPointerOutOfBounds
	}
	if err := a.checkRelocationEdges(p.Off, end, m.ptrSize); err != nil {
		return Pointer{}, err
	}
	if a.defined != nil && !a.defined.allDefined(p.Off, end) {
		return Pointer{}, ErrReadUndefBytes
	}
	off := buf.Uint(m.order, a.bytes[p.Off:end])
	target, ok := a.relocs.at(p.Off)
	if !ok {
		return Pointer{}, ErrReadBytesAsPointer
	}
	return Pointer{Alloc: target, Off: off}, nil
}

// WritePtr stores val at dest: the offset component as a pointer-sized
// integer plus a relocation record naming val's allocation. This is the
// only way provenance is created. The destination range must currently
// hold plain data.
func (m *Memory) WritePtr(dest Pointer, val Pointer) error {
	b, err := m.bytesMut(dest, m.ptrSize)
	if err != nil {
		return err
	}
	buf.PutUint(m.order, b, val.Off)
	a, err := m.Get(dest.Alloc)
	if err != nil {
		return err
	}
	a.relocs.insert(dest.Off, val.Alloc)
	return nil
}

// ReadBool reads the byte at p as a boolean: 0 is false, 1 is true, and
// anything else fails with ErrInvalidBool.
func (m *Memory) ReadBool(p Pointer) (bool, error) {
	b, err := m.Bytes(p, 1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// WriteBool stores b at p as a single byte.
func (m *Memory) WriteBool(p Pointer, v bool) error {
	b, err := m.bytesMut(p, 1)
	if err != nil {
		return err
	}
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
	return nil
}

// ReadInt reads a signed two's-complement integer of the given width
// (1, 2, 4 or 8 bytes) at p, sign-extended to int64.
func (m *Memory) ReadInt(p Pointer, size uint64) (int64, error) {
	if !buf.ValidWidth(size) {
		return 0, ErrInvalidIntSize
	}
	b, err := m.Bytes(p, size)
	if err != nil {
		return 0, err
	}
	return buf.Int(m.order, b), nil
}

// WriteInt stores n at p as a signed integer of the given width (1, 2, 4
// or 8 bytes), truncating the two's-complement bit pattern to the width.
func (m *Memory) WriteInt(p Pointer, n int64, size uint64) error {
	if !buf.ValidWidth(size) {
		return ErrInvalidIntSize
	}
	b, err := m.bytesMut(p, size)
	if err != nil {
		return err
	}
	buf.PutInt(m.order, b, n)
	return nil
}

// ReadUint reads an unsigned integer of the given width (1, 2, 4 or 8
// bytes) at p.
func (m *Memory) ReadUint(p Pointer, size uint64) (uint64, error) {
	if !buf.ValidWidth(size) {
		return 0, ErrInvalidIntSize
	}
	b, err := m.Bytes(p, size)
	if err != nil {
		return 0, err
	}
	return buf.Uint(m.order, b), nil
}

// WriteUint stores n at p as an unsigned integer of the given width (1, 2,
// 4 or 8 bytes), truncating to the width.
func (m *Memory) WriteUint(p Pointer, n uint64, size uint64) error {
	if !buf.ValidWidth(size) {
		return ErrInvalidIntSize
	}
	b, err := m.bytesMut(p, size)
	if err != nil {
		return err
	}
	buf.PutUint(m.order, b, n)
	return nil
}

// ReadIsize reads a signed integer at the configured pointer width.
func (m *Memory) ReadIsize(p Pointer) (int64, error) {
	return m.ReadInt(p, m.ptrSize)
}

// WriteIsize stores n as a signed integer at the configured pointer width.
func (m *Memory) WriteIsize(p Pointer, n int64) error {
	return m.WriteInt(p, n, m.ptrSize)
}

// ReadUsize reads an unsigned integer at the configured pointer width.
func (m *Memory) ReadUsize(p Pointer) (uint64, error) {
	return m.ReadUint(p, m.ptrSize)
}

// WriteUsize stores n as an unsigned integer at the configured pointer
// width.
func (m *Memory) WriteUsize(p Pointer, n uint64) error {
	return m.WriteUint(p, n, m.ptrSize)
}
