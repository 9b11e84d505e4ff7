package mem

// AllocID names one allocation in a Memory table. Ids come from a
// monotonically increasing counter and are never reused, so a stale id can
// never alias a later allocation.
type AllocID uint64

// Pointer is a logical reference into one allocation: the allocation's id
// plus a byte offset. Pointers are plain values; copying one copies nothing
// and owns nothing. An out-of-range offset is only detected when the
// pointer is dereferenced through a Memory.
type Pointer struct {
	Alloc AllocID
	Off   uint64
}

// Add returns a pointer into the same allocation displaced by delta bytes.
// delta may be negative. The arithmetic wraps two's-complement, like
// unsafe.Add; no bounds check happens here, the next access through the
// returned pointer validates the range.
func (p Pointer) Add(delta int64) Pointer {
	p.Off += uint64(delta)
	return p
}
