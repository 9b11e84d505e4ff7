package mem

// definedMask tracks which bytes of an allocation have been written, one
// bit per byte. Allocations start fully undefined; every successful write
// defines the bytes it touches. Only present when Options.TrackUndef is
// set — without it, unwritten bytes simply read back as zero.
type definedMask struct {
	words []uint64
}

func newDefinedMask(n uint64) *definedMask {
	return &definedMask{words: make([]uint64, (n+63)/64)}
}

func (m *definedMask) get(i uint64) bool {
	return m.words[i/64]&(1<<(i%64)) != 0
}

// setRange marks every byte in [start, end) as defined.
func (m *definedMask) setRange(start, end uint64) {
	for i := start; i < end; i++ {
		m.words[i/64] |= 1 << (i % 64)
	}
}

// allDefined reports whether every byte in [start, end) has been written.
func (m *definedMask) allDefined(start, end uint64) bool {
	for i := start; i < end; i++ {
		if !m.get(i) {
			return false
		}
	}
	return true
}

// snapshot copies the definedness bits of [start, end). The copy makes a
// later apply safe even when source and destination ranges overlap within
// the same allocation.
func (m *definedMask) snapshot(start, end uint64) []bool {
	out := make([]bool, end-start)
	for i := range out {
		out[i] = m.get(start + uint64(i))
	}
	return out
}

// apply writes previously snapshotted bits starting at off, both setting
// and clearing so copied-in undefined bytes stay undefined.
func (m *definedMask) apply(off uint64, bits []bool) {
	for i, b := range bits {
		j := off + uint64(i)
		if b {
			m.words[j/64] |= 1 << (j % 64)
		} else {
			m.words[j/64] &^= 1 << (j % 64)
		}
	}
}
