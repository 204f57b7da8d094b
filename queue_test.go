package jsengine

import "testing"

func TestTaskQueue_FIFO(t *testing.T) {
	q := NewTaskQueue[int]()
	q.PushBack(1)
	q.PushBack(2)

	a, ok := q.Pop()
	if !ok || a != 1 {
		t.Fatalf("first pop = (%d, %v), want (1, true)", a, ok)
	}
	b, ok := q.Pop()
	if !ok || b != 2 {
		t.Fatalf("second pop = (%d, %v), want (2, true)", b, ok)
	}
}

func TestTaskQueue_PushFrontOvertakes(t *testing.T) {
	q := NewTaskQueue[string]()
	q.PushBack("a")
	q.PushFront("b")

	first, ok := q.Pop()
	if !ok || first != "b" {
		t.Fatalf("first pop = (%q, %v), want (\"b\", true)", first, ok)
	}
	second, ok := q.Pop()
	if !ok || second != "a" {
		t.Fatalf("second pop = (%q, %v), want (\"a\", true)", second, ok)
	}
}

func TestTaskQueue_PopEmptyReturnsAbsent(t *testing.T) {
	q := NewTaskQueue[int]()
	v, ok := q.Pop()
	if ok {
		t.Fatalf("pop of empty queue returned ok=true, v=%d", v)
	}
	if v != 0 {
		t.Fatalf("pop of empty queue returned non-zero value %d", v)
	}
}

func TestTaskQueue_IsEmpty(t *testing.T) {
	q := NewTaskQueue[int]()
	if !q.IsEmpty() {
		t.Fatal("new queue should be empty")
	}
	q.PushBack(1)
	if q.IsEmpty() {
		t.Fatal("queue with one item should not be empty")
	}
	q.Pop()
	if !q.IsEmpty() {
		t.Fatal("queue should be empty after draining its only item")
	}
}

func TestTaskQueue_MultiplePushFront(t *testing.T) {
	q := NewTaskQueue[int]()
	q.PushBack(1)
	q.PushFront(2)
	q.PushFront(3)

	want := []int{3, 2, 1}
	for _, w := range want {
		got, ok := q.Pop()
		if !ok || got != w {
			t.Fatalf("pop = (%d, %v), want (%d, true)", got, ok, w)
		}
	}
}
