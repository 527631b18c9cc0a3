package datastructure

import (
	"testing"
)

func TestHeapExtractsAscending(t *testing.T) {
	h := NewBinaryHeap[string]()
	ranks := []float64{5, 1, 4, 2, 3}
	for _, r := range ranks {
		h.Insert(NewPriorityQueueNode(r, "n", "item"))
	}

	prev := -1.0
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("ExtractMin: %v", err)
		}
		if node.GetRank() < prev {
			t.Fatalf("extracted %f after %f", node.GetRank(), prev)
		}
		prev = node.GetRank()
	}
}

func TestHeapTieBreakByKeyThenInsertion(t *testing.T) {
	h := NewFourAryHeap[string]()
	h.Insert(NewPriorityQueueNode(7.0, "B", "b"))
	h.Insert(NewPriorityQueueNode(7.0, "A", "a-first"))
	h.Insert(NewPriorityQueueNode(7.0, "A", "a-second"))

	want := []string{"a-first", "a-second", "b"}
	for i, w := range want {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("ExtractMin: %v", err)
		}
		if node.GetItem() != w {
			t.Errorf("extraction %d = %q, want %q", i, node.GetItem(), w)
		}
	}
}

func TestHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[int]()
	if _, err := h.ExtractMin(); err == nil {
		t.Error("ExtractMin on empty heap must error")
	}
	if _, err := h.GetMin(); err == nil {
		t.Error("GetMin on empty heap must error")
	}
	if h.Size() != 0 || !h.IsEmpty() {
		t.Error("empty heap reports wrong size")
	}
}
