package disjoint

import (
	"sort"
)

// MakeSet turns the element into its own singleton set. Call it once per
// element, after AssignIDs and before any Union or Find involving it.
// Calling it again is not detected: it resets the element and silently
// discards any unions already applied to it.
func (r *Registry[T]) MakeSet(id ID) error {
	if err := r.parents.Set(id, id); err != nil {
		return err
	}
	return r.ranks.Set(id, 0)
}

// Find returns the id of the representative of the set containing id. Parent
// references are followed until an element parented to itself is reached.
func (r *Registry[T]) Find(id ID) (ID, error) {
	parent, err := r.parents.Get(id)
	if err != nil {
		return 0, err
	}
	for parent != id {
		id = parent
		if parent, err = r.parents.Get(id); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// Joined reports whether a and b belong to the same set.
func (r *Registry[T]) Joined(a, b ID) (bool, error) {
	rootA, err := r.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := r.Find(b)
	if err != nil {
		return false, err
	}
	return rootA == rootB, nil
}

// Union merges the sets containing a and b. The root of lower rank becomes a
// child of the other root; on equal ranks one root is picked and its rank
// grows by one, which keeps the trees shallow. Merging an already merged pair
// is a no-op.
func (r *Registry[T]) Union(a, b ID) error {
	rootA, err := r.Find(a)
	if err != nil {
		return err
	}
	rootB, err := r.Find(b)
	if err != nil {
		return err
	}
	if rootA == rootB {
		return nil
	}

	rankA, err := r.ranks.Get(rootA)
	if err != nil {
		return err
	}
	rankB, err := r.ranks.Get(rootB)
	if err != nil {
		return err
	}

	switch {
	case rankA < rankB:
		return r.parents.Set(rootA, rootB)
	case rankA > rankB:
		return r.parents.Set(rootB, rootA)
	default:
		if err := r.parents.Set(rootB, rootA); err != nil {
			return err
		}
		return r.ranks.Set(rootA, rankA+1)
	}
}

// CompressSets rewrites every element's parent directly to its set's
// representative, so each following Find resolves in a single step. Run it
// once after all unions are applied; unions performed later reintroduce
// depth and lose the flattening. Requires MakeSet to have been called on all
// elements.
func (r *Registry[T]) CompressSets() error {
	for i := range r.elements {
		root, err := r.Find(r.elements[i].id)
		if err != nil {
			return err
		}
		r.elements[i].parent = root
	}
	return nil
}

// CountSets returns the number of disjoint sets. Every set has exactly one
// element parented to itself, so a single pass suffices and nothing is
// mutated. It does not require CompressSets or sorting.
func (r *Registry[T]) CountSets() uint64 {
	var count uint64
	for i := range r.elements {
		if r.elements[i].parent == r.elements[i].id {
			count++
		}
	}
	return count
}

// SortByParent stably reorders the elements so that members of one set are
// contiguous. Meaningful after CompressSets, when parent is the
// representative id. Ids keep resolving afterwards, so Find and Union stay
// legal, but new unions break contiguity until CompressSets and SortByParent
// run again.
func (r *Registry[T]) SortByParent() {
	sort.SliceStable(r.elements, func(i, j int) bool {
		return r.elements[i].parent < r.elements[j].parent
	})
	for i := range r.elements {
		r.positions[r.elements[i].id] = ID(i)
	}
}
