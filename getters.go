package rttable

// GetRegisteredSurfaceIDs returns a snapshot of the registered surfaces, in
// registration order.
func (t *Table) GetRegisteredSurfaceIDs() []SurfaceID {
	result := make([]SurfaceID, 0, t.surfaceToIndex.Size())
	t.surfaceToIndex.ForEach(func(id SurfaceID, _ FrameIndex) bool {
		result = append(result, id)
		return true
	})
	return result
}

// GetNumRenderTargets returns the amount of registered surfaces.
func (t *Table) GetNumRenderTargets() int {
	return t.surfaceToIndex.Size()
}

// GetFrameIndex returns the frame index assigned to id, or InvalidFrameIndex
// if id is the sentinel or is not registered.
func (t *Table) GetFrameIndex(id SurfaceID) FrameIndex {
	if id == InvalidSurfaceID {
		return InvalidFrameIndex
	}
	idx, ok := t.surfaceToIndex.Get(id)
	if !ok {
		return InvalidFrameIndex
	}
	return idx
}

// GetSurfaceID returns the surface which idx is assigned to, or
// InvalidSurfaceID if the index is free. The lookup is a linear scan: the
// table holds at most MaxNumEntries entries, a reverse map is not worth it.
func (t *Table) GetSurfaceID(idx FrameIndex) SurfaceID {
	result := InvalidSurfaceID
	t.surfaceToIndex.ForEach(func(id SurfaceID, candidate FrameIndex) bool {
		if candidate == idx {
			result = id
			return false
		}
		return true
	})
	return result
}
