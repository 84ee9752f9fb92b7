package disjoint

// Set is a view over the elements of one disjoint set. Elements aliases the
// registry's storage, it is valid until the registry is reordered.
type Set[T any] struct {
	Root     ID
	Elements []Element[T]
}

// Sets returns an iterator yielding one Set per maximal run of elements
// sharing a parent. It requires CompressSets followed by SortByParent, so
// that each run is exactly one disjoint set. The iterator is restartable,
// each call of the returned function scans the registry from the beginning.
func (r *Registry[T]) Sets() func(func(Set[T]) bool) {
	return func(yield func(Set[T]) bool) {
		start := 0
		for i := 1; i <= len(r.elements); i++ {
			if i < len(r.elements) && r.elements[i].parent == r.elements[start].parent {
				continue
			}
			if !yield(Set[T]{
				Root:     r.elements[start].parent,
				Elements: r.elements[start:i:i],
			}) {
				return
			}
			start = i
		}
	}
}
