package iteratable

import "testing"

func TestAddIsIdempotentAndOrdered(t *testing.T) {
	s := New[int]()
	if !s.Add(1) {
		t.Fatalf("first add of 1 should report newly added")
	}
	if s.Add(1) {
		t.Fatalf("second add of 1 should report already present")
	}
	s.Add(2)
	s.Add(3)
	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}
	for i, want := range []int{1, 2, 3} {
		if got := s.Item(i); got != want {
			t.Errorf("item %d: got %d, want %d", i, got, want)
		}
	}
}

func TestRemove(t *testing.T) {
	s := New(1, 2, 3)
	if !s.Remove(2) {
		t.Fatalf("expected Remove(2) to succeed")
	}
	if s.Has(2) {
		t.Fatalf("2 should no longer be a member")
	}
	if s.Size() != 2 {
		t.Fatalf("expected size 2 after removal, got %d", s.Size())
	}
	if s.Remove(2) {
		t.Fatalf("removing an absent item should report false")
	}
}

func TestIterateOnceGrowsDuringTraversal(t *testing.T) {
	s := New(1)
	var seen []int
	s.IterateOnce()
	for {
		it, ok := s.Next()
		if !ok {
			break
		}
		seen = append(seen, it)
		if it < 3 {
			s.Add(it + 1)
		}
	}
	want := []int{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}

func TestEachVisitsItemsAddedDuringCallback(t *testing.T) {
	s := New("a")
	var seen []string
	s.Each(func(item string) {
		seen = append(seen, item)
		if item == "a" {
			s.Add("b")
		}
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("unexpected traversal: %v", seen)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := New(1, 2)
	cp := s.Copy()
	cp.Add(3)
	if s.Has(3) {
		t.Fatalf("modifying the copy should not affect the original")
	}
	if !cp.Has(3) {
		t.Fatalf("the copy should have the newly added item")
	}
}

func TestSubset(t *testing.T) {
	s := New(1, 2, 3, 4, 5)
	evens := s.Subset(func(it int) bool { return it%2 == 0 })
	if evens.Size() != 2 {
		t.Fatalf("expected 2 even items, got %d", evens.Size())
	}
	if evens.Item(0) != 2 || evens.Item(1) != 4 {
		t.Fatalf("subset should preserve relative insertion order, got %v", evens.Slice())
	}
}

func TestFirst(t *testing.T) {
	s := New[int]()
	if _, ok := s.First(); ok {
		t.Fatalf("empty set should report no first item")
	}
	s.Add(7)
	s.Add(8)
	first, ok := s.First()
	if !ok || first != 7 {
		t.Fatalf("expected first item 7, got %v (ok=%v)", first, ok)
	}
}
