// Package stack provides a slice-backed LIFO container.
//
// The sequence compiler uses it to track open loop frames; an explicit stack
// keeps the expansion depth independent of the call stack.
package stack

// Stack is a slice-backed LIFO stack.
//
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New creates a new Stack with the given preallocated capacity.
func New[T any](prealloc int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, prealloc)}
}

// Push adds an item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the item at the top of the stack.
// It returns the zero value and false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek returns the item at the top of the stack without removing it.
// It returns the zero value and false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Reset resets the stack to an empty state.
func (s *Stack[T]) Reset() {
	s.items = s.items[:0] // Reslice to 0 length to reuse the underlying array
}

// IsEmpty returns true if the stack is empty, false otherwise.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Length returns the number of items in the stack.
func (s *Stack[T]) Length() int {
	return len(s.items)
}
