package internal

// ErrorQueue is a binary max-heap of triangle ids keyed by candidate error.
//
// Unlike container/heap, it keeps an inverse table from triangle id to heap
// slot, so an arbitrary triangle can be removed in O(log n). This is needed
// because a split or an edge flip retires triangles that may be sitting
// anywhere in the heap, and stale entries would make Peek wrong.
//
// Ordering is total: larger error first, and for equal errors the smaller
// triangle id first. That makes the pop order independent of push order,
// which is what keeps refinement deterministic.
type ErrorQueue struct {
	heap  []int     // triangle ids in heap order
	slots []int     // triangle id -> index into heap, or -1
	keys  []float64 // triangle id -> error
}

func NewErrorQueue() *ErrorQueue {
	return &ErrorQueue{}
}

// Grow makes room for triangle ids below n.
func (q *ErrorQueue) Grow(n int) {
	for len(q.slots) < n {
		q.slots = append(q.slots, -1)
		q.keys = append(q.keys, 0)
	}
}

func (q *ErrorQueue) Len() int {
	return len(q.heap)
}

func (q *ErrorQueue) Contains(t int) bool {
	return t >= 0 && t < len(q.slots) && q.slots[t] >= 0
}

// Key returns the last error recorded for t, whether or not it is queued.
func (q *ErrorQueue) Key(t int) float64 {
	return q.keys[t]
}

// Push inserts t with the given error. t must not already be queued.
func (q *ErrorQueue) Push(t int, err float64) {
	q.Grow(t + 1)
	if q.slots[t] >= 0 {
		Fatalf("triangle %d is already queued", t)
	}
	q.keys[t] = err
	i := len(q.heap)
	q.slots[t] = i
	q.heap = append(q.heap, t)
	q.up(i)
}

// Peek returns the worst triangle without removing it.
func (q *ErrorQueue) Peek() (t int, err float64, ok bool) {
	if len(q.heap) == 0 {
		return -1, 0, false
	}
	t = q.heap[0]
	return t, q.keys[t], true
}

// Pop removes and returns the worst triangle. The queue must not be empty.
func (q *ErrorQueue) Pop() int {
	n := len(q.heap) - 1
	if n < 0 {
		Fatalf("pop from empty error queue")
	}
	q.swap(0, n)
	q.down(0, n)
	return q.popBack()
}

// Remove takes t out of the queue. It reports false when t was not queued.
func (q *ErrorQueue) Remove(t int) bool {
	if !q.Contains(t) {
		return false
	}
	i := q.slots[t]
	n := len(q.heap) - 1
	if n != i {
		q.swap(i, n)
		if !q.down(i, n) {
			q.up(i)
		}
	}
	q.popBack()
	return true
}

// Items returns the queued triangle ids in heap order. The slice is shared.
func (q *ErrorQueue) Items() []int {
	return q.heap
}

// CopyFrom overwrites q with the contents of other, reusing q's buffers.
func (q *ErrorQueue) CopyFrom(other *ErrorQueue) {
	q.heap = append(q.heap[:0], other.heap...)
	q.slots = append(q.slots[:0], other.slots...)
	q.keys = append(q.keys[:0], other.keys...)
}

// Valid checks the heap property and the slot table. Only used by mesh
// validation; it is O(n).
func (q *ErrorQueue) Valid() bool {
	for i, t := range q.heap {
		if q.slots[t] != i {
			return false
		}
		if i > 0 && q.less(i, (i-1)/2) {
			return false
		}
	}
	queued := 0
	for _, slot := range q.slots {
		if slot >= 0 {
			queued++
		}
	}
	return queued == len(q.heap)
}

func (q *ErrorQueue) popBack() int {
	n := len(q.heap) - 1
	t := q.heap[n]
	q.heap = q.heap[:n]
	q.slots[t] = -1
	return t
}

// less reports whether the entry at heap index i must sit above the entry at j.
func (q *ErrorQueue) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	ea, eb := q.keys[a], q.keys[b]
	if ea != eb {
		return ea > eb
	}
	return a < b
}

func (q *ErrorQueue) swap(i, j int) {
	a, b := q.heap[i], q.heap[j]
	q.heap[i], q.heap[j] = b, a
	q.slots[b] = i
	q.slots[a] = j
}

func (q *ErrorQueue) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

// down sifts the entry at i0 within heap[:n], and reports whether it moved.
func (q *ErrorQueue) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i > i0
}
