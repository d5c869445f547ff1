// table_synced.go provides a concurrency-safe wrapper around Table.

package rttable

import (
	"context"

	"github.com/xaionaro-go/xsync"
)

// SyncedTable is a Table safe for use from multiple goroutines. A driver
// front end that fields VA calls from more than one thread should use this
// type; everybody else can keep the bare Table.
type SyncedTable struct {
	locker xsync.Mutex
	table  *Table
}

// NewSynced returns a SyncedTable. It is unusable until Init is called.
func NewSynced() *SyncedTable {
	return &SyncedTable{
		table: New(),
	}
}

func (t *SyncedTable) Init(ctx context.Context, maxNumEntries int) {
	t.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		t.table.Init(ctx, maxNumEntries)
	})
}

func (t *SyncedTable) BeginPicture(ctx context.Context) {
	t.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		t.table.BeginPicture(ctx)
	})
}

func (t *SyncedTable) RegisterSurface(ctx context.Context, id SurfaceID) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.RegisterSurface, ctx, id)
}

func (t *SyncedTable) UnregisterSurface(ctx context.Context, id SurfaceID) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.UnregisterSurface, ctx, id)
}

func (t *SyncedTable) IsRegistered(ctx context.Context, id SurfaceID) bool {
	return xsync.DoA1R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.IsRegistered, id)
}

func (t *SyncedTable) SetCurrentSurface(ctx context.Context, id SurfaceID) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.SetCurrentSurface, ctx, id)
}

func (t *SyncedTable) GetCurrentSurface(ctx context.Context) SurfaceID {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetCurrentSurface)
}

func (t *SyncedTable) SetCurrentReconTarget(ctx context.Context, id SurfaceID) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.SetCurrentReconTarget, ctx, id)
}

func (t *SyncedTable) GetCurrentReconTarget(ctx context.Context) SurfaceID {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetCurrentReconTarget)
}

func (t *SyncedTable) GetRegisteredSurfaceIDs(ctx context.Context) []SurfaceID {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetRegisteredSurfaceIDs)
}

func (t *SyncedTable) GetNumRenderTargets(ctx context.Context) int {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetNumRenderTargets)
}

func (t *SyncedTable) GetFrameIndex(ctx context.Context, id SurfaceID) FrameIndex {
	return xsync.DoA1R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetFrameIndex, id)
}

func (t *SyncedTable) GetSurfaceID(ctx context.Context, idx FrameIndex) SurfaceID {
	return xsync.DoA1R1(xsync.WithNoLogging(ctx, true), &t.locker, t.table.GetSurfaceID, idx)
}

func (t *SyncedTable) String() string {
	return xsync.DoR1(context.TODO(), &t.locker, t.table.String)
}
