package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefskit/prefskit/pkg/types"
)

func TestAllocGrowsByBlock(t *testing.T) {
	var a Arena[int]

	ref, v, err := a.Alloc()
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, Ref(0), ref)
	require.Equal(t, 1, a.Len())
	require.Equal(t, BlockSize, a.Cap())

	// Filling the rest of the block must not grow storage.
	for i := 1; i < BlockSize; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}
	require.Equal(t, BlockSize, a.Cap())

	// One more allocation crosses into a second block.
	_, _, err = a.Alloc()
	require.NoError(t, err)
	require.Equal(t, 2*BlockSize, a.Cap())
}

func TestFreeZeroesAndReuses(t *testing.T) {
	var a Arena[string]

	ref, v, err := a.Alloc()
	require.NoError(t, err)
	*v = "payload"

	require.NoError(t, a.Free(ref))
	require.Equal(t, 0, a.Len())

	// The freed slot is handed out again, zero-valued.
	ref2, v2, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, ref, ref2)
	require.Equal(t, "", *v2)
}

func TestSlotReuseWithoutGrowth(t *testing.T) {
	var a Arena[int]

	const n = 10
	refs := make(map[Ref]bool, n)
	for i := 0; i < n; i++ {
		ref, v, err := a.Alloc()
		require.NoError(t, err)
		*v = i
		refs[ref] = true
	}
	for ref := range refs {
		require.NoError(t, a.Free(ref))
	}

	// The next n allocations reuse the same indices (order unspecified)
	// without growing storage.
	for i := 0; i < n; i++ {
		ref, _, err := a.Alloc()
		require.NoError(t, err)
		require.True(t, refs[ref], "slot %d was not among the freed ones", ref)
	}
	require.Equal(t, BlockSize, a.Cap())
}

func TestRefsStableAcrossGrowth(t *testing.T) {
	var a Arena[int]

	ref, v, err := a.Alloc()
	require.NoError(t, err)
	*v = 42

	// Force several growth steps.
	for i := 0; i < 3*BlockSize; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}

	got, err := a.Get(ref)
	require.NoError(t, err)
	require.Equal(t, 42, *got)
}

func TestGetInvalid(t *testing.T) {
	var a Arena[int]

	_, err := a.Get(99)
	require.Error(t, err)
	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, types.ErrKindState, terr.Kind)

	ref, _, err := a.Alloc()
	require.NoError(t, err)
	require.NoError(t, a.Free(ref))

	// Freed slot is no longer gettable.
	_, err = a.Get(ref)
	require.Error(t, err)

	// Double free is rejected, not corrupting.
	require.Error(t, a.Free(ref))
	require.Equal(t, 0, a.Len())
}

func TestEachVisitsOccupiedInOrder(t *testing.T) {
	var a Arena[int]

	var refs []Ref
	for i := 0; i < 5; i++ {
		ref, v, err := a.Alloc()
		require.NoError(t, err)
		*v = i
		refs = append(refs, ref)
	}
	require.NoError(t, a.Free(refs[2]))

	var seen []int
	a.Each(func(_ Ref, v *int) bool {
		seen = append(seen, *v)
		return true
	})
	require.Equal(t, []int{0, 1, 3, 4}, seen)

	// Early stop.
	count := 0
	a.Each(func(Ref, *int) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

func TestEachAllowsFreeDuringVisit(t *testing.T) {
	var a Arena[int]

	for i := 0; i < 4; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}

	a.Each(func(ref Ref, _ *int) bool {
		require.NoError(t, a.Free(ref))
		return true
	})
	require.Equal(t, 0, a.Len())
}

func TestFind(t *testing.T) {
	var a Arena[string]

	for _, s := range []string{"alpha", "beta", "gamma"} {
		_, v, err := a.Alloc()
		require.NoError(t, err)
		*v = s
	}

	ref, ok := a.Find(func(v *string) bool { return *v == "beta" })
	require.True(t, ok)
	got, err := a.Get(ref)
	require.NoError(t, err)
	require.Equal(t, "beta", *got)

	_, ok = a.Find(func(v *string) bool { return *v == "delta" })
	require.False(t, ok)
}

func TestReset(t *testing.T) {
	var a Arena[int]

	for i := 0; i < 3; i++ {
		_, _, err := a.Alloc()
		require.NoError(t, err)
	}
	a.Reset()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())

	// Arena is reusable after Reset.
	ref, _, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, Ref(0), ref)
}
