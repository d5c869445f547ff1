package rttable

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsDistinctIndices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 4)

	surfaces := []SurfaceID{0x10, 0x11, 0x12, 0x13}
	for _, id := range surfaces {
		require.NoError(t, tbl.RegisterSurface(ctx, id))
	}
	require.Equal(t, 4, tbl.GetNumRenderTargets())

	seen := map[FrameIndex]SurfaceID{}
	for _, id := range surfaces {
		idx := tbl.GetFrameIndex(id)
		require.NotEqual(t, InvalidFrameIndex, idx)
		require.Less(t, uint8(idx), uint8(4))
		_, dup := seen[idx]
		require.False(t, dup, "index %s assigned twice", idx)
		seen[idx] = id

		require.Equal(t, id, tbl.GetSurfaceID(idx))
	}

	// no sealed history to evict, so a fifth surface cannot fit
	err := tbl.RegisterSurface(ctx, 0x14)
	require.ErrorAs(t, err, &ErrNoFreeIndex{})
	require.False(t, tbl.IsRegistered(0x14))
	require.Equal(t, 4, tbl.GetNumRenderTargets())
}

func TestRegisterIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 2)

	require.NoError(t, tbl.RegisterSurface(ctx, 0x42))
	idx := tbl.GetFrameIndex(0x42)

	require.NoError(t, tbl.RegisterSurface(ctx, 0x42))
	require.Equal(t, idx, tbl.GetFrameIndex(0x42))
	require.Equal(t, 1, tbl.GetNumRenderTargets())
}

func TestRegisterInvalidSurface(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 2)

	err := tbl.RegisterSurface(ctx, InvalidSurfaceID)
	require.ErrorAs(t, err, &ErrInvalidSurfaceID{})
	require.Equal(t, 0, tbl.GetNumRenderTargets())
}

func TestUnregisterUnknownSurface(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 2)

	err := tbl.UnregisterSurface(ctx, 0x99)
	require.ErrorAs(t, err, &ErrSurfaceNotRegistered{})
}

func TestUnregisterReturnsIndexToPool(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 1)

	require.NoError(t, tbl.RegisterSurface(ctx, 0x1))
	idx := tbl.GetFrameIndex(0x1)
	require.NoError(t, tbl.UnregisterSurface(ctx, 0x1))
	require.False(t, tbl.IsRegistered(0x1))
	require.Equal(t, InvalidSurfaceID, tbl.GetSurfaceID(idx))

	require.NoError(t, tbl.RegisterSurface(ctx, 0x2))
	require.Equal(t, idx, tbl.GetFrameIndex(0x2))
}

func TestGetFrameIndexQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 2)
	require.NoError(t, tbl.RegisterSurface(ctx, 0x5))

	tests := []struct {
		name string
		id   SurfaceID
		want FrameIndex
	}{
		{"registered", 0x5, 0},
		{"unregistered", 0x6, InvalidFrameIndex},
		{"sentinel", InvalidSurfaceID, InvalidFrameIndex},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tbl.GetFrameIndex(tt.id))
		})
	}

	require.Equal(t, InvalidSurfaceID, tbl.GetSurfaceID(InvalidFrameIndex))
	require.Equal(t, InvalidSurfaceID, tbl.GetSurfaceID(FrameIndex(1)))
}

func TestGetRegisteredSurfaceIDsSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 4)
	for _, id := range []SurfaceID{0x30, 0x20, 0x10} {
		require.NoError(t, tbl.RegisterSurface(ctx, id))
	}

	require.Equal(t, []SurfaceID{0x30, 0x20, 0x10}, tbl.GetRegisteredSurfaceIDs())
}

func TestInitResetsEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tbl := New()
	tbl.Init(ctx, 2)
	require.NoError(t, tbl.SetCurrentSurface(ctx, 0x1))
	require.NoError(t, tbl.SetCurrentReconTarget(ctx, 0x2))

	tbl.Init(ctx, 3)
	require.Equal(t, 0, tbl.GetNumRenderTargets())
	require.Empty(t, tbl.GetRegisteredSurfaceIDs())
	require.Equal(t, InvalidSurfaceID, tbl.GetCurrentSurface())
	require.Equal(t, InvalidSurfaceID, tbl.GetCurrentReconTarget())
	require.False(t, tbl.IsRegistered(0x1))
}

// checkInvariants verifies that frame indices are unique and that every index
// is either assigned or in the free pool, never both.
func checkInvariants(t *testing.T, tbl *Table, capacity int) {
	t.Helper()

	require.Equal(t, capacity, tbl.GetNumRenderTargets()+tbl.freeIndexPool.Size())

	seen := map[FrameIndex]struct{}{}
	for _, id := range tbl.GetRegisteredSurfaceIDs() {
		idx := tbl.GetFrameIndex(id)
		require.NotEqual(t, InvalidFrameIndex, idx)
		require.Less(t, int(idx), capacity)
		_, dup := seen[idx]
		require.False(t, dup)
		seen[idx] = struct{}{}

		require.Equal(t, id, tbl.GetSurfaceID(idx))
	}
}

func TestInvariantsUnderRandomWorkload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const capacity = 8
	const numSurfaces = 24

	r := rand.New(rand.NewSource(1))
	tbl := New()
	tbl.Init(ctx, capacity)

	for step := 0; step < 2000; step++ {
		id := SurfaceID(r.Intn(numSurfaces))
		switch r.Intn(4) {
		case 0:
			tbl.BeginPicture(ctx)
		case 1, 2:
			err := tbl.RegisterSurface(ctx, id)
			if err != nil {
				require.ErrorAs(t, err, &ErrNoFreeIndex{})
			}
		case 3:
			err := tbl.UnregisterSurface(ctx, id)
			if err != nil {
				require.ErrorAs(t, err, &ErrSurfaceNotRegistered{})
			}
		}
		checkInvariants(t, tbl, capacity)
		require.LessOrEqual(t, len(tbl.history), maxHistoryLength)
	}
}
