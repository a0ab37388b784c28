package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type frameItem struct {
	id    int
	block []string
}

func TestStack(t *testing.T) {
	assert := assert.New(t)
	t.Run("Empty Stack", func(t *testing.T) {
		s := New[*frameItem](1)

		assert.True(s.IsEmpty())
		assert.Equal(0, s.Length())

		item, ok := s.Pop()
		assert.Nil(item)
		assert.False(ok)

		item, ok = s.Peek()
		assert.Nil(item)
		assert.False(ok)
	})

	t.Run("Push and Pop", func(t *testing.T) {
		s := New[*frameItem](1)

		item1 := &frameItem{id: 1}
		s.Push(item1)
		assert.False(s.IsEmpty())
		assert.Equal(1, s.Length())

		item2 := &frameItem{id: 2}
		s.Push(item2)
		assert.Equal(2, s.Length())

		popped, ok := s.Pop()
		assert.True(ok)
		assert.Equal(item2, popped)
		assert.Equal(1, s.Length())

		popped, ok = s.Pop()
		assert.True(ok)
		assert.Equal(item1, popped)
		assert.True(s.IsEmpty())

		popped, ok = s.Pop()
		assert.False(ok)
		assert.Nil(popped)
		assert.True(s.IsEmpty())
	})

	t.Run("Peek", func(t *testing.T) {
		s := New[*frameItem](1)

		item1 := &frameItem{id: 1}
		item2 := &frameItem{id: 2}
		s.Push(item1)

		top, ok := s.Peek()
		assert.True(ok)
		assert.Equal(item1, top)
		assert.Equal(1, s.Length()) // Length should not change after peek

		s.Push(item2)

		top, ok = s.Peek()
		assert.True(ok)
		assert.Equal(item2, top)
		assert.Equal(2, s.Length())
	})

	t.Run("Peek allows mutating the top item in place", func(t *testing.T) {
		s := New[*frameItem](1)
		s.Push(&frameItem{id: 1})

		top, ok := s.Peek()
		assert.True(ok)
		top.block = append(top.block, "cmd_a")

		popped, _ := s.Pop()
		assert.Equal([]string{"cmd_a"}, popped.block)
	})

	t.Run("Reset", func(t *testing.T) {
		s := New[*frameItem](1)
		s.Push(&frameItem{id: 1})
		s.Push(&frameItem{id: 2})

		s.Reset()
		assert.True(s.IsEmpty())
		assert.Equal(0, s.Length())

		s.Push(&frameItem{id: 3})
		assert.Equal(1, s.Length())
	})

	t.Run("Value type items", func(t *testing.T) {
		s := New[int](0)
		for i := 0; i < 10; i++ {
			s.Push(i)
		}
		for i := 9; i >= 0; i-- {
			item, ok := s.Pop()
			assert.True(ok)
			assert.Equal(i, item)
		}
	})
}
