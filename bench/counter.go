package bench

// Counter counts the calls made through predicates it wraps.
type Counter struct {
	n int64
}

func (c *Counter) Wrap(pred func(Item) bool) func(Item) bool {
	return func(item Item) bool {
		c.n++
		return pred(item)
	}
}

func (c *Counter) Count() int64 { return c.n }

func (c *Counter) Reset() { c.n = 0 }
