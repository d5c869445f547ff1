// surface.go defines the SurfaceID and FrameIndex types and their sentinels.

// Package rttable implements the render target table of a VA-API-style media
// driver front end: it tracks the surfaces a caller touches during
// Begin/Render/End picture cycles and assigns each a compact frame index that
// downstream reference management can address.
package rttable

import (
	"fmt"
)

// SurfaceID is an opaque, caller-supplied identifier of a render target
// surface. The table keeps only a bookkeeping entry per surface; allocating
// and freeing the surface itself is the caller's business.
type SurfaceID uint32

// InvalidSurfaceID is the reserved "no surface" value.
// The constant is copied from libva's VA_INVALID_ID.
const InvalidSurfaceID = SurfaceID(0xffffffff)

func (id SurfaceID) String() string {
	if id == InvalidSurfaceID {
		return "<invalid>"
	}
	return fmt.Sprintf("0x%08X", uint32(id))
}

// FrameIndex is the compact per-table index assigned to a registered surface.
type FrameIndex uint8

// InvalidFrameIndex is the reserved "no index" value.
const InvalidFrameIndex = FrameIndex(0xff)

// MaxNumEntries is the highest capacity Init accepts: FrameIndex is one byte
// and InvalidFrameIndex is reserved.
const MaxNumEntries = int(InvalidFrameIndex)

func (idx FrameIndex) String() string {
	if idx == InvalidFrameIndex {
		return "<invalid>"
	}
	return fmt.Sprintf("%d", uint8(idx))
}
