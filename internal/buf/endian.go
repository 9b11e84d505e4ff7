// Package buf contains bounds arithmetic and endian codec helpers shared by
// the memory packages.
package buf

import "encoding/binary"

// ValidWidth reports whether n is a supported integer width in bytes.
// Codecs operate at the fixed machine widths 1, 2, 4 and 8.
func ValidWidth(n uint64) bool {
	switch n {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// Uint decodes an unsigned integer of len(b) bytes in the given byte order.
// len(b) must be 1, 2, 4 or 8; other lengths return 0.
func Uint(order binary.ByteOrder, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	return 0
}

// PutUint encodes v into len(b) bytes in the given byte order, truncating v
// to the buffer width. len(b) must be 1, 2, 4 or 8; other lengths write
// nothing.
func PutUint(order binary.ByteOrder, b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	}
}

// Int decodes a signed two's-complement integer of len(b) bytes in the given
// byte order, sign-extending to int64. len(b) must be 1, 2, 4 or 8.
func Int(order binary.ByteOrder, b []byte) int64 {
	u := Uint(order, b)
	shift := 64 - 8*uint(len(b))
	return int64(u<<shift) >> shift
}

// PutInt encodes n into len(b) bytes in the given byte order. The
// two's-complement bit pattern is truncated to the buffer width, so values
// out of range for the width wrap exactly as a hardware store would.
func PutInt(order binary.ByteOrder, b []byte, n int64) {
	PutUint(order, b, uint64(n))
}
