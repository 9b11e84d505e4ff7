// Package repr describes the in-memory shape of interpreted values.
//
// A Repr is supplied by the compiler's layout resolver and consumed by the
// evaluator as a size hint when allocating and addressing simulated memory.
// Layout computation itself happens upstream; a Repr only reports the sizes
// it was built with.
package repr

// Repr is a size descriptor for one value's in-memory layout.
type Repr interface {
	// Size returns the total size of the value in bytes.
	Size() uint64
}

// Primitive describes a non-aggregate value such as a boolean, integer,
// character or pointer.
type Primitive struct {
	ByteSize uint64
}

func (p Primitive) Size() uint64 { return p.ByteSize }

// Field locates one field inside a variant: its byte offset from the start
// of the aggregate and its size.
type Field struct {
	Offset uint64
	Size   uint64
}

// Aggregate describes structs, enums and tuples: a leading discriminant
// integer (zero-sized for structs and tuples) followed by the fields of
// whichever variant the discriminant selects.
type Aggregate struct {
	// DiscrSize is the size of the discriminant, between 0 and 8 bytes.
	DiscrSize uint64

	// TotalSize is the size of the entire aggregate, discriminant
	// included.
	TotalSize uint64

	// Variants holds the field layout of each variant.
	Variants [][]Field
}

func (a Aggregate) Size() uint64 { return a.TotalSize }

// Array describes a homogeneous sequence of Length elements.
type Array struct {
	ElemSize uint64
	Length   uint64
}

// Size returns ElemSize * Length. The product is not overflow-checked; the
// layout resolver supplying the sizes is trusted to keep shapes
// addressable.
func (a Array) Size() uint64 { return a.ElemSize * a.Length }
