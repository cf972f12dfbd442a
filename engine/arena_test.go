package engine

import (
	"testing"

	"github.com/lixenwraith/arena-fighter/core"
)

func TestArenaInsertGet(t *testing.T) {
	a := NewArena[int](4)
	h1 := a.Insert(10)
	h2 := a.Insert(20)

	if h1 == h2 || h1.IsNil() || h2.IsNil() {
		t.Fatalf("handles not distinct and live: %v %v", h1, h2)
	}
	if v, ok := a.Get(h2); !ok || *v != 20 {
		t.Errorf("Get(h2) = %v, %v", v, ok)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	a := NewArena[string](4)
	old := a.Insert("first")
	if !a.Remove(old) {
		t.Fatal("Remove returned false for live handle")
	}
	if a.Remove(old) {
		t.Error("double Remove should return false")
	}

	fresh := a.Insert("second")
	if fresh.Index() != old.Index() {
		t.Fatalf("slot not reused: old=%v fresh=%v", old, fresh)
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if v, ok := a.Get(fresh); !ok || *v != "second" {
		t.Errorf("Get(fresh) = %v, %v", v, ok)
	}
}

func TestArenaNilAndOutOfRange(t *testing.T) {
	a := NewArena[int](1)
	if _, ok := a.Get(core.NilHandle); ok {
		t.Error("nil handle resolved")
	}
	if _, ok := a.Get(core.NewHandle(99, 1)); ok {
		t.Error("out of range handle resolved")
	}
}

func TestArenaEachIndexOrder(t *testing.T) {
	a := NewArena[int](8)
	var hs []core.Handle
	for i := 0; i < 5; i++ {
		hs = append(hs, a.Insert(i))
	}
	a.Remove(hs[1])
	a.Remove(hs[3])

	var got []int
	a.Each(func(_ core.Handle, v *int) bool {
		got = append(got, *v)
		return true
	})
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each visited %v, want %v", got, want)
			break
		}
	}
}

func TestArenaRemoveWhereAndClear(t *testing.T) {
	a := NewArena[int](8)
	for i := 0; i < 6; i++ {
		a.Insert(i)
	}
	removed := a.RemoveWhere(func(v *int) bool { return *v%2 == 0 })
	if len(removed) != 3 || a.Len() != 3 {
		t.Errorf("RemoveWhere removed %d, Len %d", len(removed), a.Len())
	}
	for _, h := range removed {
		if a.Contains(h) {
			t.Errorf("%v still live after RemoveWhere", h)
		}
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len() after Clear = %d", a.Len())
	}
}
