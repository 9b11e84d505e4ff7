package mem

import "fmt"

// PrimKind tags the machine primitive carried by a PrimVal.
type PrimKind uint8

const (
	KindBool PrimKind = iota + 1
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64

	// KindIntegerPtr is a pointer-sized integer produced by a
	// pointer-to-int cast. It stores like a plain integer and carries no
	// provenance, so reading it back as a pointer fails.
	KindIntegerPtr

	// KindAbstractPtr is a pointer into a simulated allocation. Writing
	// one through WritePrimVal is not supported; use WritePtr, which
	// records provenance.
	KindAbstractPtr
)

// PrimVal is the evaluator's write payload: one machine primitive plus its
// kind tag. Integer payloads live in Bits as a sign-extended
// two's-complement pattern; Ptr is set only for KindAbstractPtr.
type PrimVal struct {
	Kind PrimKind
	Bits uint64
	Ptr  Pointer
}

func BoolVal(b bool) PrimVal {
	var bits uint64
	if b {
		bits = 1
	}
	return PrimVal{Kind: KindBool, Bits: bits}
}

func I8Val(n int8) PrimVal   { return PrimVal{Kind: KindI8, Bits: uint64(int64(n))} }
func I16Val(n int16) PrimVal { return PrimVal{Kind: KindI16, Bits: uint64(int64(n))} }
func I32Val(n int32) PrimVal { return PrimVal{Kind: KindI32, Bits: uint64(int64(n))} }
func I64Val(n int64) PrimVal { return PrimVal{Kind: KindI64, Bits: uint64(n)} }

func U8Val(n uint8) PrimVal   { return PrimVal{Kind: KindU8, Bits: uint64(n)} }
func U16Val(n uint16) PrimVal { return PrimVal{Kind: KindU16, Bits: uint64(n)} }
func U32Val(n uint32) PrimVal { return PrimVal{Kind: KindU32, Bits: uint64(n)} }
func U64Val(n uint64) PrimVal { return PrimVal{Kind: KindU64, Bits: n} }

// IntegerPtrVal wraps a pointer-sized integer obtained from a
// pointer-to-int cast.
func IntegerPtrVal(n uint64) PrimVal { return PrimVal{Kind: KindIntegerPtr, Bits: n} }

// AbstractPtrVal wraps a simulated pointer. WritePrimVal rejects it with
// ErrUnimplemented.
func AbstractPtrVal(p Pointer) PrimVal { return PrimVal{Kind: KindAbstractPtr, Ptr: p} }

// WritePrimVal dispatches v to the matching fixed-width writer. Abstract
// pointers are rejected with ErrUnimplemented; WritePtr is the provenance-
// recording path for those.
func (m *Memory) WritePrimVal(p Pointer, v PrimVal) error {
	switch v.Kind {
	case KindBool:
		return m.WriteBool(p, v.Bits != 0)
	case KindI8:
		return m.WriteInt(p, int64(v.Bits), 1)
	case KindI16:
		return m.WriteInt(p, int64(v.Bits), 2)
	case KindI32:
		return m.WriteInt(p, int64(v.Bits), 4)
	case KindI64:
		return m.WriteInt(p, int64(v.Bits), 8)
	case KindU8:
		return m.WriteUint(p, v.Bits, 1)
	case KindU16:
		return m.WriteUint(p, v.Bits, 2)
	case KindU32:
		return m.WriteUint(p, v.Bits, 4)
	case KindU64, KindIntegerPtr:
		return m.WriteUint(p, v.Bits, 8)
	case KindAbstractPtr:
		return ErrUnimplemented
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrUnimplemented, v.Kind)
	}
}
