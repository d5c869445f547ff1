// table.go defines the Table structure and its lifecycle operations.

package rttable

import (
	"context"
	"fmt"

	"github.com/iotaledger/hive.go/ds/orderedmap"
	"github.com/iotaledger/hive.go/ds/stack"

	"github.com/xaionaro-go/rttable/logger"
)

// Table tracks the surfaces registered during VA calls and assigns to each a
// unique FrameIndex, later used for reference picture management by the
// driver. It also tracks the "current" render target and the "reconstructed
// frame" render target.
//
// A Table assumes a single goroutine drives it; wrap it into a SyncedTable
// if that does not hold.
type Table struct {
	currentSurface     SurfaceID
	currentReconTarget SurfaceID
	surfaceToIndex     *orderedmap.OrderedMap[SurfaceID, FrameIndex]
	freeIndexPool      stack.Stack[FrameIndex]
	history            []*generation
	initialized        bool
}

// New returns an empty Table. Init must be called before anything else.
func New() *Table {
	return &Table{
		currentSurface:     InvalidSurfaceID,
		currentReconTarget: InvalidSurfaceID,
		surfaceToIndex:     orderedmap.New[SurfaceID, FrameIndex](),
		freeIndexPool:      stack.New[FrameIndex](),
		history:            []*generation{newGeneration()},
	}
}

// Init resets the table and makes maxNumEntries frame indices available.
// It must be called before any other operation and may be called again at any
// time to discard all accumulated state.
//
// maxNumEntries should realistically not exceed the size of the driver's
// uncompressed surface buffer; it is required to be in 1..MaxNumEntries.
func (t *Table) Init(ctx context.Context, maxNumEntries int) {
	logger.Debugf(ctx, "Init: %d", maxNumEntries)
	assert(ctx, maxNumEntries > 0 && maxNumEntries <= MaxNumEntries, "maxNumEntries out of range", maxNumEntries)

	t.currentSurface = InvalidSurfaceID
	t.currentReconTarget = InvalidSurfaceID
	t.surfaceToIndex = orderedmap.New[SurfaceID, FrameIndex]()
	t.freeIndexPool = stack.New[FrameIndex]()
	t.history = []*generation{newGeneration()}
	t.initialized = true

	for i := maxNumEntries - 1; i >= 0; i-- {
		t.freeIndexPool.Push(FrameIndex(i))
	}
}

func (t *Table) String() string {
	if !t.initialized {
		return "RenderTargetTable(uninitialized)"
	}
	return fmt.Sprintf(
		"RenderTargetTable(registered: %d, free: %d, generations: %d)",
		t.surfaceToIndex.Size(), t.freeIndexPool.Size(), len(t.history),
	)
}
