package mem

import "testing"

func TestRelocTable_InsertKeepsOrder(t *testing.T) {
	var rt relocTable
	for _, off := range []uint64{40, 8, 24, 0, 16} {
		rt.insert(off, AllocID(off+1))
	}

	got := rt.all()
	want := []uint64{0, 8, 16, 24, 40}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Off != want[i] {
			t.Fatalf("entry %d: off=%d want %d", i, r.Off, want[i])
		}
		if r.Target != AllocID(want[i]+1) {
			t.Fatalf("entry %d: target=%d want %d", i, r.Target, want[i]+1)
		}
	}
}

func TestRelocTable_InsertReplaces(t *testing.T) {
	var rt relocTable
	rt.insert(8, 1)
	rt.insert(8, 2)

	if rt.len() != 1 {
		t.Fatalf("len=%d want 1", rt.len())
	}
	id, ok := rt.at(8)
	if !ok || id != 2 {
		t.Fatalf("at(8)=%d,%v want 2,true", id, ok)
	}
}

func TestRelocTable_At(t *testing.T) {
	var rt relocTable
	rt.insert(8, 1)
	rt.insert(16, 2)

	if _, ok := rt.at(7); ok {
		t.Fatal("at(7) should miss")
	}
	if _, ok := rt.at(9); ok {
		t.Fatal("at(9) should miss")
	}
	if id, ok := rt.at(16); !ok || id != 2 {
		t.Fatalf("at(16)=%d,%v want 2,true", id, ok)
	}
}

func TestRelocTable_InRange(t *testing.T) {
	var rt relocTable
	for _, off := range []uint64{0, 8, 16, 24} {
		rt.insert(off, 1)
	}

	got := rt.inRange(8, 24) // half-open: excludes 24
	if len(got) != 2 || got[0].Off != 8 || got[1].Off != 16 {
		t.Fatalf("inRange(8,24)=%v", got)
	}
	if rt.inRange(9, 9) != nil {
		t.Fatal("empty range should return nil")
	}
	if rt.inRange(30, 20) != nil {
		t.Fatal("inverted range should return nil")
	}
	if n := rt.countInRange(0, 100); n != 4 {
		t.Fatalf("countInRange(0,100)=%d want 4", n)
	}
	if n := rt.countInRange(1, 8); n != 0 {
		t.Fatalf("countInRange(1,8)=%d want 0", n)
	}
}

func TestRelocTable_EmptyAll(t *testing.T) {
	var rt relocTable
	if rt.all() != nil {
		t.Fatal("all() on empty table should be nil")
	}
}
