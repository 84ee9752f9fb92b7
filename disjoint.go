// Package disjoint implements a disjoint-set (union-find) registry keeping
// all bookkeeping inside one contiguous, pre-sized sequence of elements.
package disjoint

import (
	"unsafe"

	"github.com/outofforest/photon"
	"github.com/pkg/errors"

	"github.com/outofforest/disjoint/arena"
)

// ID identifies an element by its position at the time ids were assigned.
type ID uint64

// Element stores one user payload together with the union-find bookkeeping.
// Bookkeeping fields are unexported and never touch the payload, so payload
// comparison from the outside is comparison of payloads only.
type Element[T any] struct {
	Payload T

	id     ID
	rank   uint64
	parent ID
}

// ID returns the id assigned to the element.
func (e *Element[T]) ID() ID {
	return e.id
}

// Parent returns the id of the element's parent. After CompressSets it equals
// the id of the set's representative.
func (e *Element[T]) Parent() ID {
	return e.parent
}

// Size returns the number of bytes needed to store capacity elements.
func Size[T any](capacity uint64) uint64 {
	var e Element[T]
	return capacity * uint64(unsafe.Sizeof(e))
}

// New creates a registry with room for capacity elements. All memory is
// allocated here, populating and running the algorithm allocate nothing.
func New[T any](capacity uint64) *Registry[T] {
	return newRegistry(make([]Element[T], 0, capacity), capacity)
}

// NewInArena creates a registry whose element storage lives in reserved arena
// memory instead of the Go heap. The garbage collector does not scan arena
// memory, so the payload type must not contain pointers.
func NewInArena[T comparable](a *arena.Arena, capacity uint64) (*Registry[T], error) {
	if required := Size[T](capacity); a.Size() < required {
		return nil, errors.Errorf("arena of %d bytes cannot hold %d elements, %d bytes required",
			a.Size(), capacity, required)
	}
	elements := photon.SliceFromPointer[Element[T]](a.Pointer(), int(capacity))
	return newRegistry(elements[:0], capacity), nil
}

func newRegistry[T any](elements []Element[T], capacity uint64) *Registry[T] {
	r := &Registry[T]{
		elements:  elements,
		positions: make([]ID, 0, capacity),
	}
	r.parents = newField(r,
		func(e *Element[T]) ID { return e.parent },
		func(e *Element[T], v ID) { e.parent = v },
	)
	r.ranks = newField(r,
		func(e *Element[T]) uint64 { return e.rank },
		func(e *Element[T], v uint64) { e.rank = v },
	)
	return r
}

// Registry owns the contiguous sequence of elements and partitions them into
// disjoint sets. It is not safe for concurrent use.
type Registry[T any] struct {
	elements []Element[T]

	// positions maps id to the element's current position. It is identity
	// until SortByParent permutes the elements.
	positions []ID

	parents field[T, ID]
	ranks   field[T, uint64]
}

// Append adds an element holding payload. It fails once the capacity declared
// at construction time is reached, the storage never grows.
func (r *Registry[T]) Append(payload T) error {
	if len(r.elements) == cap(r.elements) {
		return errors.Errorf("registry is full, capacity %d reached", cap(r.elements))
	}
	r.elements = append(r.elements, Element[T]{Payload: payload})
	return nil
}

// AssignIDs sets every element's id to its position. Call it exactly once,
// after population is complete; ids stay stable from then on, even when
// SortByParent later moves elements around. No lookup by id resolves before
// this call.
func (r *Registry[T]) AssignIDs() {
	r.positions = r.positions[:len(r.elements)]
	for i := range r.elements {
		r.elements[i].id = ID(i)
		r.positions[i] = ID(i)
	}
}

// Len returns the number of elements appended so far.
func (r *Registry[T]) Len() uint64 {
	return uint64(len(r.elements))
}

// Capacity returns the capacity declared at construction time.
func (r *Registry[T]) Capacity() uint64 {
	return uint64(cap(r.elements))
}

// Element returns the element with the given id, wherever it currently sits.
func (r *Registry[T]) Element(id ID) (*Element[T], error) {
	if uint64(id) >= uint64(len(r.positions)) {
		return nil, errors.Errorf("no element with id %d in the registry", id)
	}
	return &r.elements[r.positions[id]], nil
}
