package models

// Index is a position in a displayed list. It only guarantees the raw value is
// non-negative; bounds are checked against the current filtered view when a
// command executes.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from a 1-based position (as typed by the user).
func IndexFromOneBased(i int) Index {
	return Index{zeroBased: i - 1}
}

// IndexFromZeroBased builds an Index from a 0-based position.
func IndexFromZeroBased(i int) Index {
	return Index{zeroBased: i}
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

// InRange reports whether the index addresses one of size elements.
func (i Index) InRange(size int) bool {
	return i.zeroBased >= 0 && i.zeroBased < size
}
