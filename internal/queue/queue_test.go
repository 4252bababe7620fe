package queue

import "testing"

func TestFIFO_Order(t *testing.T) {
	q := New[int](2)
	for i := 0; i < 20; i++ {
		q.Push(i)
	}
	if q.Len() != 20 {
		t.Fatalf("expected len 20, got %d", q.Len())
	}

	for i := 0; i < 20; i++ {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if v != i {
			t.Errorf("pop %d: got %d, want %d", i, v, i)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Errorf("expected empty queue after draining")
	}
}

func TestFIFO_WrapAround(t *testing.T) {
	q := New[int](4)

	// Interleave pushes and pops so head wraps past the buffer end.
	for round := 0; round < 10; round++ {
		q.Push(round * 2)
		q.Push(round*2 + 1)
		if v, _ := q.Pop(); v != round*2 {
			t.Fatalf("round %d: got %d", round, v)
		}
		if v, _ := q.Pop(); v != round*2+1 {
			t.Fatalf("round %d: got %d", round, v)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got len %d", q.Len())
	}
}

func TestFIFO_Clear(t *testing.T) {
	q := New[string](0)
	q.Push("a")
	q.Push("b")
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("expected len 0 after clear, got %d", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Errorf("expected pop to fail after clear")
	}

	q.Push("c")
	if v, _ := q.Pop(); v != "c" {
		t.Errorf("queue unusable after clear: got %q", v)
	}
}
