package cursor

import (
	"container/list"
)

// List is a bidirectional position into a container/list.List whose values
// all hold an E. The end position wraps a nil element.
type List[E any] struct {
	l *list.List
	e *list.Element
}

// ListBegin returns the position of the front element of l.
func ListBegin[E any](l *list.List) List[E] {
	return List[E]{l: l, e: l.Front()}
}

// ListEnd returns the position one past the back element of l.
func ListEnd[E any](l *list.List) List[E] {
	return List[E]{l: l}
}

// Element returns the list element at c, or nil at the end position.
func (c List[E]) Element() *list.Element { return c.e }

func (c List[E]) Next() List[E] {
	return List[E]{l: c.l, e: c.e.Next()}
}

func (c List[E]) Prev() List[E] {
	if c.e == nil {
		return List[E]{l: c.l, e: c.l.Back()}
	}
	return List[E]{l: c.l, e: c.e.Prev()}
}

func (c List[E]) Equal(other List[E]) bool { return c.e == other.e }

func (c List[E]) Value() E { return c.e.Value.(E) }

// Swap exchanges the values of two elements; the elements stay linked where
// they are.
func (c List[E]) Swap(other List[E]) {
	c.e.Value, other.e.Value = other.e.Value, c.e.Value
}
