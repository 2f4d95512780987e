package sim

import "image"

// history is a fixed-capacity ring of past integer positions, most recent at 0.
type history struct {
	slots []image.Point
	head  int
}

func newHistory(n int, sentinel image.Point) history {
	h := history{slots: make([]image.Point, n)}
	for i := range h.slots {
		h.slots[i] = sentinel
	}
	return h
}

// push makes p the newest entry and drops the oldest.
func (h *history) push(p image.Point) {
	h.head--
	if h.head < 0 {
		h.head = len(h.slots) - 1
	}
	h.slots[h.head] = p
}

// at returns the entry i pushes ago.
func (h *history) at(i int) image.Point {
	return h.slots[(h.head+i)%len(h.slots)]
}

func (h *history) size() int { return len(h.slots) }
