package models

// Record is one entity instance in a collection.
type Record interface {
	GetID() int
}

// NextID returns the identifier for the next record of a collection: one past
// the largest existing id, or 1 when the collection is empty.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func cloneRecord[T Record](rec T) T {
	if c, ok := any(rec).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return rec
}
