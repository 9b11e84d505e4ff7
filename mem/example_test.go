package mem_test

import (
	"fmt"

	"github.com/abmachine/memkit/mem"
)

func Example() {
	m := mem.New(mem.Options{})

	// A fresh 16-byte allocation, zero-filled.
	p := m.Allocate(16)
	if err := m.WriteUint(p, 42, 4); err != nil {
		panic(err)
	}
	n, _ := m.ReadInt(p, 4)
	fmt.Println(n)

	// Store a pointer at offset 8. The relocation side-table now marks
	// those bytes as provenance-carrying.
	q := m.Allocate(8)
	if err := m.WritePtr(p.Add(8), q); err != nil {
		panic(err)
	}

	// Pointer bytes cannot be read back as plain data.
	_, err := m.ReadInt(p.Add(8), 8)
	fmt.Println(err)

	// But a copy carries the whole pointer across, provenance included.
	dst := m.Allocate(16)
	if err := m.Copy(p, dst, 16); err != nil {
		panic(err)
	}
	moved, _ := m.ReadPtr(dst.Add(8))
	fmt.Println(moved == q)

	// Output:
	// 42
	// mem: pointer bytes accessed as data
	// true
}
