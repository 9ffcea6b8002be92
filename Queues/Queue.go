package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	// Push item to the back.
	Push(item T)
	// Pop the front item. Returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	// Peek at the front item without removing it. Returns the zero value of
	// T if the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
}

// ArrayQueue is a Queue backed by a single growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the backing array to the current size.
	Shrink()
	// Clear the queue, keeping the backing array.
	Clear()
	// Cap of the backing array.
	Cap() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
