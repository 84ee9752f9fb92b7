package disjoint_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/disjoint"
)

func TestSetsGroupSortedElements(t *testing.T) {
	requireT := require.New(t)
	r := newRegistry(requireT, 7)

	requireT.NoError(r.Union(0, 2))
	requireT.NoError(r.Union(2, 4))
	requireT.NoError(r.Union(1, 5))

	requireT.NoError(r.CompressSets())
	r.SortByParent()

	requireT.Equal([][]string{{"a", "c", "e"}, {"b", "f"}, {"d"}, {"g"}}, collectSets(r))
	requireT.EqualValues(4, r.CountSets())
}

func TestSetsIsRestartable(t *testing.T) {
	requireT := require.New(t)
	r := newRegistry(requireT, 5)

	requireT.NoError(r.Union(0, 1))
	requireT.NoError(r.CompressSets())
	r.SortByParent()

	iterate := r.Sets()

	first := make([]disjoint.ID, 0, 4)
	iterate(func(s disjoint.Set[string]) bool {
		first = append(first, s.Root)
		return true
	})

	second := make([]disjoint.ID, 0, 4)
	iterate(func(s disjoint.Set[string]) bool {
		second = append(second, s.Root)
		return true
	})

	requireT.Len(first, 4)
	requireT.Equal(first, second)
}

func TestSetsStopsWhenTold(t *testing.T) {
	requireT := require.New(t)
	r := newRegistry(requireT, 6)

	requireT.NoError(r.CompressSets())
	r.SortByParent()

	var yielded int
	r.Sets()(func(s disjoint.Set[string]) bool {
		yielded++
		return yielded < 2
	})
	requireT.Equal(2, yielded)
}

func TestLookupSurvivesSorting(t *testing.T) {
	requireT := require.New(t)
	r := newRegistry(requireT, 6)

	requireT.NoError(r.Union(1, 3))
	requireT.NoError(r.Union(3, 5))
	requireT.NoError(r.CompressSets())
	r.SortByParent()

	// Ids stay stable even though elements moved.
	for i, payload := range []string{"a", "b", "c", "d", "e", "f"} {
		e, err := r.Element(disjoint.ID(i))
		requireT.NoError(err)
		requireT.EqualValues(i, e.ID())
		requireT.Equal(payload, e.Payload)
	}

	// New unions are still legal, contiguity just has to be rebuilt.
	requireT.NoError(r.Union(0, 2))
	joined, err := r.Joined(0, 2)
	requireT.NoError(err)
	requireT.True(joined)

	requireT.NoError(r.CompressSets())
	r.SortByParent()

	requireT.Equal([][]string{{"a", "c"}, {"b", "d", "f"}, {"e"}}, collectSets(r))
}

func TestSetsOnEmptyRegistry(t *testing.T) {
	requireT := require.New(t)
	r := disjoint.New[string](10)
	r.AssignIDs()

	r.Sets()(func(s disjoint.Set[string]) bool {
		requireT.Fail("nothing should be yielded")
		return true
	})
	requireT.Zero(r.CountSets())
}

// collectSets drains the iterator into payload groups, each group sorted so
// the expectation does not depend on pre-sort element order.
func collectSets(r *disjoint.Registry[string]) [][]string {
	groups := make([][]string, 0, r.Len())
	r.Sets()(func(s disjoint.Set[string]) bool {
		group := make([]string, 0, len(s.Elements))
		for i := range s.Elements {
			group = append(group, s.Elements[i].Payload)
		}
		sort.Strings(group)
		groups = append(groups, group)
		return true
	})
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
