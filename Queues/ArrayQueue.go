package Queues

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty ArrayQueue that holds initCap items before its first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new slice of newLen, head first. newLen must be at least sz.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

// Shrink the underlying slice to fit the current items.
func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

// Clear the queue, keeping its capacity. The slots are zeroed so popped items can be collected.
func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, has bool) {
	if !u.Empty() {
		item, has = u.content[u.head], true
	}
	return
}
