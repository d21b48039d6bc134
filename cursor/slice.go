package cursor

// Slice is a random-access position into a Go slice.
type Slice[E any] struct {
	s []E
	i int
}

// Begin returns the position of the first element of s.
func Begin[E any](s []E) Slice[E] {
	return Slice[E]{s: s}
}

// End returns the position one past the last element of s.
func End[E any](s []E) Slice[E] {
	return Slice[E]{s: s, i: len(s)}
}

// Index is the offset of c from the start of its slice.
func (c Slice[E]) Index() int { return c.i }

func (c Slice[E]) Next() Slice[E] { return Slice[E]{s: c.s, i: c.i + 1} }

func (c Slice[E]) Prev() Slice[E] { return Slice[E]{s: c.s, i: c.i - 1} }

func (c Slice[E]) Add(n int) Slice[E] { return Slice[E]{s: c.s, i: c.i + n} }

func (c Slice[E]) Sub(other Slice[E]) int { return c.i - other.i }

func (c Slice[E]) Equal(other Slice[E]) bool { return c.i == other.i }

func (c Slice[E]) Value() E { return c.s[c.i] }

func (c Slice[E]) Swap(other Slice[E]) {
	c.s[c.i], c.s[other.i] = c.s[other.i], c.s[c.i]
}
