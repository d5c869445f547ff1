// register.go implements surface registration and index reclamation.

package rttable

import (
	"context"

	"github.com/xaionaro-go/rttable/logger"
)

// RegisterSurface records id as used by the current picture and assigns it a
// frame index if it does not have one already (registration is idempotent).
//
// When the free index pool is exhausted the table reclaims indices by
// evicting sealed generations, oldest first, until an index frees up or no
// sealed generation is left; in the latter case ErrNoFreeIndex is returned.
func (t *Table) RegisterSurface(ctx context.Context, id SurfaceID) (_err error) {
	logger.Tracef(ctx, "RegisterSurface: %s", id)
	defer func() { logger.Tracef(ctx, "/RegisterSurface: %s: %v", id, _err) }()
	assert(ctx, t.initialized, "Init was not called")

	if id == InvalidSurfaceID {
		return ErrInvalidSurfaceID{}
	}

	// the surface participates in the latest Begin/End picture cycle:
	// as the target, the recon target, a reference frame, or in loop filtering
	t.openGeneration().add(id)

	if t.IsRegistered(id) {
		return nil
	}

	for t.freeIndexPool.IsEmpty() && len(t.history) > 1 {
		t.evictOldestGeneration(ctx)
	}

	idx, ok := t.freeIndexPool.Pop()
	if !ok {
		return ErrNoFreeIndex{}
	}
	t.surfaceToIndex.Set(id, idx)
	logger.Debugf(ctx, "registered surface %s as frame index %s", id, idx)
	return nil
}

// UnregisterSurface removes id from the table and from every remembered
// generation, returning its frame index to the free pool.
//
// The "current" and "recon target" designations are left untouched even if
// they point at id; see GetCurrentSurface.
func (t *Table) UnregisterSurface(ctx context.Context, id SurfaceID) (_err error) {
	logger.Tracef(ctx, "UnregisterSurface: %s", id)
	defer func() { logger.Tracef(ctx, "/UnregisterSurface: %s: %v", id, _err) }()
	assert(ctx, t.initialized, "Init was not called")

	idx, ok := t.surfaceToIndex.Get(id)
	if !ok {
		logger.Debugf(ctx, "surface %s was not registered in the render target table", id)
		return ErrSurfaceNotRegistered{SurfaceID: id}
	}

	for _, g := range t.history {
		g.remove(id)
	}

	t.freeIndexPool.Push(idx)
	t.surfaceToIndex.Delete(id)
	return nil
}

// IsRegistered reports whether id currently holds a frame index.
func (t *Table) IsRegistered(id SurfaceID) bool {
	if !t.initialized {
		return false
	}
	return t.surfaceToIndex.Has(id)
}
