package arena_test

import (
	"testing"

	"github.com/outofforest/photon"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/disjoint/arena"
)

func TestReserveAndUse(t *testing.T) {
	const size = 1000

	requireT := require.New(t)

	a, err := arena.New(size, false)
	requireT.NoError(err)
	t.Cleanup(a.Close)

	requireT.EqualValues(size, a.Size())

	b := photon.SliceFromPointer[byte](a.Pointer(), size)
	for i := range size {
		b[i] = byte(i)
	}
	for i := range size {
		requireT.Equal(byte(i), b[i])
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	requireT := require.New(t)

	a, err := arena.New(1<<20, false)
	requireT.NoError(err)

	a.Close()
	requireT.True(a.Pointer() == nil)
	a.Close()
}
