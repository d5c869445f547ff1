// targets.go tracks the "current" and "reconstructed frame" render targets.

package rttable

import (
	"context"

	"github.com/xaionaro-go/rttable/logger"
)

// SetCurrentSurface designates id as the render target currently being
// processed, registering it first. Passing InvalidSurfaceID clears the
// designation without touching the registration map.
func (t *Table) SetCurrentSurface(ctx context.Context, id SurfaceID) (_err error) {
	logger.Tracef(ctx, "SetCurrentSurface: %s", id)
	defer func() { logger.Tracef(ctx, "/SetCurrentSurface: %s: %v", id, _err) }()

	if id != InvalidSurfaceID {
		if err := t.RegisterSurface(ctx, id); err != nil {
			return ErrInvalidSurfaceID{Err: err}
		}
	}

	t.currentSurface = id
	return nil
}

// GetCurrentSurface returns the surface designated via SetCurrentSurface.
//
// The designation is not cleared when the surface is unregistered, so the
// returned ID may be stale; the caller owns that hazard.
func (t *Table) GetCurrentSurface() SurfaceID {
	return t.currentSurface
}

// SetCurrentReconTarget designates id as the surface that receives the
// reconstructed frame, registering it first. Unlike SetCurrentSurface there
// is no sentinel escape: registering InvalidSurfaceID fails and the previous
// designation stays in place.
func (t *Table) SetCurrentReconTarget(ctx context.Context, id SurfaceID) (_err error) {
	logger.Tracef(ctx, "SetCurrentReconTarget: %s", id)
	defer func() { logger.Tracef(ctx, "/SetCurrentReconTarget: %s: %v", id, _err) }()

	if err := t.RegisterSurface(ctx, id); err != nil {
		return ErrInvalidSurfaceID{Err: err}
	}

	t.currentReconTarget = id
	return nil
}

// GetCurrentReconTarget returns the surface designated via
// SetCurrentReconTarget. The same staleness caveat as for GetCurrentSurface
// applies.
func (t *Table) GetCurrentReconTarget() SurfaceID {
	return t.currentReconTarget
}
