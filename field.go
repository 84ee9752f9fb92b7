package disjoint

// field is a read/write capability over one bookkeeping value of every
// element, addressed by (registry, id). Rank and parent go through the same
// bounds-checked resolution, there is no unchecked path into the storage.
type field[T any, V ~uint64] struct {
	registry *Registry[T]
	load     func(*Element[T]) V
	store    func(*Element[T], V)
}

func newField[T any, V ~uint64](
	registry *Registry[T],
	load func(*Element[T]) V,
	store func(*Element[T], V),
) field[T, V] {
	return field[T, V]{
		registry: registry,
		load:     load,
		store:    store,
	}
}

// Get reads the value stored for id.
func (f field[T, V]) Get(id ID) (V, error) {
	e, err := f.registry.Element(id)
	if err != nil {
		return 0, err
	}
	return f.load(e), nil
}

// Set writes the value stored for id.
func (f field[T, V]) Set(id ID, value V) error {
	e, err := f.registry.Element(id)
	if err != nil {
		return err
	}
	f.store(e, value)
	return nil
}
