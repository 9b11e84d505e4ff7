package mem

import "sort"

// Reloc records that the pointer-sized byte range starting at Off encodes
// the offset component of a pointer into allocation Target.
type Reloc struct {
	Off    uint64
	Target AllocID
}

// relocTable is an ordered set of relocation records, kept sorted by offset
// for binary-search range queries. Tables are small (one entry per embedded
// pointer), so an insertion-sorted slice beats a tree here.
type relocTable struct {
	entries []Reloc
}

// search returns the index of the first entry with offset >= off.
func (t *relocTable) search(off uint64) int {
	return sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Off >= off })
}

// at returns the relocation recorded exactly at off.
func (t *relocTable) at(off uint64) (AllocID, bool) {
	i := t.search(off)
	if i < len(t.entries) && t.entries[i].Off == off {
		return t.entries[i].Target, true
	}
	return 0, false
}

// insert records target at off, replacing any existing record there.
func (t *relocTable) insert(off uint64, target AllocID) {
	i := t.search(off)
	if i < len(t.entries) && t.entries[i].Off == off {
		t.entries[i].Target = target
		return
	}
	t.entries = append(t.entries, Reloc{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = Reloc{Off: off, Target: target}
}

// inRange returns a copy of every record with start <= Off < end, in
// offset order.
func (t *relocTable) inRange(start, end uint64) []Reloc {
	if start >= end {
		return nil
	}
	lo, hi := t.search(start), t.search(end)
	if lo == hi {
		return nil
	}
	out := make([]Reloc, hi-lo)
	copy(out, t.entries[lo:hi])
	return out
}

// countInRange counts records with start <= Off < end.
func (t *relocTable) countInRange(start, end uint64) int {
	if start >= end {
		return 0
	}
	return t.search(end) - t.search(start)
}

// all returns a copy of every record in offset order.
func (t *relocTable) all() []Reloc {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]Reloc, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *relocTable) len() int { return len(t.entries) }
