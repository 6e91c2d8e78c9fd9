package streams

// Deque is a minimal double-ended queue backed by a slice. It
// implements [Collector], making it a ready-made target for
// [ToCollectionOf] and [ArrayToCollectionOf].
type Deque[T any] struct {
	items []T
}

// NewDeque creates an empty Deque.
func NewDeque[T any]() *Deque[T] { return &Deque[T]{} }

// Add appends item at the back. It satisfies [Collector].
func (d *Deque[T]) Add(item T) { d.items = append(d.items, item) }

// PushFront inserts item at the front.
func (d *Deque[T]) PushFront(item T) {
	d.items = append(d.items, item)
	copy(d.items[1:], d.items)
	d.items[0] = item
}

// PopFront removes and returns the front item.
// Returns the zero value and false when the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	item := d.items[0]
	d.items = d.items[1:]
	return item, true
}

// PopBack removes and returns the back item.
// Returns the zero value and false when the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	item := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return item, true
}

// Len returns the number of items.
func (d *Deque[T]) Len() int { return len(d.items) }

// All returns a copy of the items, front to back.
func (d *Deque[T]) All() []T {
	out := make([]T, len(d.items))
	copy(out, d.items)
	return out
}
