package Sets

// Set of unique values. Insert, Search and Delete report whether the value was
// added, present, or removed respectively.
type Set[E any] interface {
	Insert(E) bool
	Search(E) bool
	Delete(E) bool
	Size() uint
	// Range calls f on each value until f returns false. It doesn't modify the set.
	Range(f func(E) bool)
}

// OrderedSet is a Set whose Range visits values in ascending order.
type OrderedSet[E any] interface {
	Set[E]
	// Root returns the value at the top of the underlying structure, if any.
	Root() (E, bool)
	Minimum() (E, bool)
	Maximum() (E, bool)
}
