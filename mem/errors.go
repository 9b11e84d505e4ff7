package mem

import "errors"

var (
	// ErrDanglingPointer indicates the referenced allocation id is not in
	// the table (never issued, or already freed).
	ErrDanglingPointer = errors.New("mem: dangling pointer dereference")

	// ErrPointerOutOfBounds indicates the requested byte range extends
	// past the end of the allocation.
	ErrPointerOutOfBounds = errors.New("mem: pointer out of bounds")

	// ErrReadPointerAsBytes indicates a plain-data access overlapped a
	// recorded pointer, or a range edge bisected one.
	ErrReadPointerAsBytes = errors.New("mem: pointer bytes accessed as data")

	// ErrReadBytesAsPointer indicates a pointer-sized read found no
	// relocation record at that offset: the bytes look numeric but were
	// never written as a pointer.
	ErrReadBytesAsPointer = errors.New("mem: data bytes read as pointer")

	// ErrInvalidBool indicates a boolean read saw a byte outside {0, 1}.
	ErrInvalidBool = errors.New("mem: invalid boolean byte")

	// ErrInvalidIntSize indicates an integer access at a width other than
	// 1, 2, 4 or 8 bytes.
	ErrInvalidIntSize = errors.New("mem: unsupported integer width")

	// ErrReadUndefBytes indicates a read touched bytes that were never
	// written. Only raised when Options.TrackUndef is enabled.
	ErrReadUndefBytes = errors.New("mem: read of undefined bytes")

	// ErrUnimplemented indicates a primitive kind this subsystem cannot
	// store, currently only abstract pointers through WritePrimVal.
	ErrUnimplemented = errors.New("mem: unimplemented primitive write")
)
