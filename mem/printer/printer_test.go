package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abmachine/memkit/mem"
)

// --- helpers ---

// buildMemory returns a Memory with two allocations, the first holding a
// little data and a pointer into the second.
func buildMemory(t *testing.T) (*mem.Memory, mem.Pointer, mem.Pointer) {
	t.Helper()
	m := mem.New(mem.Options{})

	p := m.Allocate(16)
	require.NoError(t, m.WriteUint(p, 0x11223344, 4))

	q := m.Allocate(4)
	require.NoError(t, m.WritePtr(p.Add(8), q))

	return m, p, q
}

// --- text ---

func TestPrintAlloc_Text(t *testing.T) {
	m, p, _ := buildMemory(t)

	var out bytes.Buffer
	pr := New(m, &out, DefaultOptions())
	require.NoError(t, pr.PrintAlloc(p.Alloc))

	text := out.String()
	require.Contains(t, text, "alloc 0 (16 bytes)")
	require.Contains(t, text, "44332211") // little-endian data bytes
	require.Contains(t, text, "+0x8 -> alloc 1")
}

func TestPrintAlloc_TextTruncation(t *testing.T) {
	m := mem.New(mem.Options{})
	p := m.Allocate(64)
	require.NoError(t, m.WriteBytes(p, bytes.Repeat([]byte{0xaa}, 64)))

	opts := DefaultOptions()
	opts.MaxBytes = 8

	var out bytes.Buffer
	require.NoError(t, New(m, &out, opts).PrintAlloc(p.Alloc))

	text := out.String()
	require.Contains(t, text, strings.Repeat("aa", 8))
	require.NotContains(t, text, strings.Repeat("aa", 9))
	require.Contains(t, text, "(56 more bytes)")
}

func TestPrintAlloc_HideRelocations(t *testing.T) {
	m, p, _ := buildMemory(t)

	opts := DefaultOptions()
	opts.ShowRelocations = false

	var out bytes.Buffer
	require.NoError(t, New(m, &out, opts).PrintAlloc(p.Alloc))
	require.NotContains(t, out.String(), "-> alloc")
}

func TestPrintAlloc_Dangling(t *testing.T) {
	m := mem.New(mem.Options{})

	var out bytes.Buffer
	err := New(m, &out, DefaultOptions()).PrintAlloc(7)
	require.ErrorIs(t, err, mem.ErrDanglingPointer)
}

// --- json ---

func TestPrintAll_JSON(t *testing.T) {
	m, _, q := buildMemory(t)

	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.MaxBytes = 0

	var out bytes.Buffer
	require.NoError(t, New(m, &out, opts).PrintAll())

	var got []struct {
		ID          uint64 `json:"id"`
		Size        uint64 `json:"size"`
		Bytes       string `json:"bytes"`
		Relocations []struct {
			Offset uint64 `json:"offset"`
			Target uint64 `json:"target"`
		} `json:"relocations"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)

	require.Equal(t, uint64(0), got[0].ID)
	require.Equal(t, uint64(16), got[0].Size)
	require.Len(t, got[0].Relocations, 1)
	require.Equal(t, uint64(8), got[0].Relocations[0].Offset)
	require.Equal(t, uint64(q.Alloc), got[0].Relocations[0].Target)

	require.Equal(t, uint64(1), got[1].ID)
	require.Empty(t, got[1].Relocations)
}

func TestPrintAll_TextMultiple(t *testing.T) {
	m, _, _ := buildMemory(t)

	var out bytes.Buffer
	require.NoError(t, New(m, &out, DefaultOptions()).PrintAll())

	text := out.String()
	require.Contains(t, text, "alloc 0 (16 bytes)")
	require.Contains(t, text, "alloc 1 (4 bytes)")
}
