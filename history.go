// history.go implements the bounded usage history driving surface eviction.

package rttable

import (
	"context"

	"github.com/iotaledger/hive.go/ds/orderedmap"

	"github.com/xaionaro-go/rttable/logger"
)

// maxHistoryLength bounds the amount of Begin/End picture cycles the table
// remembers; it depends on how deep the driver's async queue may get.
const maxHistoryLength = 20

// generation is the set of surfaces touched during one Begin/End picture
// cycle: the target, the recon target, reference frames, surfaces used in
// loop filtering. Membership is insertion-ordered and deduplicated.
type generation struct {
	surfaces *orderedmap.OrderedMap[SurfaceID, struct{}]
}

func newGeneration() *generation {
	return &generation{
		surfaces: orderedmap.New[SurfaceID, struct{}](),
	}
}

func (g *generation) add(id SurfaceID) {
	g.surfaces.Set(id, struct{}{})
}

func (g *generation) remove(id SurfaceID) {
	g.surfaces.Delete(id)
}

func (g *generation) contains(id SurfaceID) bool {
	return g.surfaces.Has(id)
}

func (g *generation) isEmpty() bool {
	return g.surfaces.IsEmpty()
}

func (g *generation) size() int {
	return g.surfaces.Size()
}

func (g *generation) forEach(callback func(SurfaceID) bool) {
	g.surfaces.ForEach(func(id SurfaceID, _ struct{}) bool {
		return callback(id)
	})
}

// BeginPicture opens a new generation of surface usage. It is supposed to be
// called once per picture, before any surface is registered for it. If
// nothing was registered since the previous call, the already-open generation
// is reused instead of growing the history with empty entries.
func (t *Table) BeginPicture(ctx context.Context) {
	logger.Tracef(ctx, "BeginPicture")
	defer logger.Tracef(ctx, "/BeginPicture")
	assert(ctx, t.initialized, "Init was not called")

	if t.openGeneration().isEmpty() {
		return
	}

	t.history = append([]*generation{newGeneration()}, t.history...)
	if len(t.history) > maxHistoryLength {
		t.evictOldestGeneration(ctx)
	}
}

// openGeneration is the generation still receiving registrations; everything
// behind it is sealed history.
func (t *Table) openGeneration() *generation {
	return t.history[0]
}

// evictOldestGeneration drops the oldest sealed generation and unregisters
// every member of it that no younger generation (the open one included)
// still references. Members that do reappear somewhere younger keep their
// frame index.
func (t *Table) evictOldestGeneration(ctx context.Context) {
	oldest := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]

	logger.Debugf(ctx,
		"evicting the oldest generation: %d surfaces in it, %d generations remain",
		oldest.size(), len(t.history),
	)

	oldest.forEach(func(id SurfaceID) bool {
		if t.isUsed(id) {
			return true
		}
		if !t.IsRegistered(id) {
			// recorded usage without a successful registration (e.g. an
			// attempt that ran out of indices); nothing to reclaim
			return true
		}
		err := t.UnregisterSurface(ctx, id)
		assert(ctx, err == nil, err)
		return true
	})
}

// isUsed reports whether id is referenced by any generation still in the
// history.
func (t *Table) isUsed(id SurfaceID) bool {
	for _, g := range t.history {
		if g.contains(id) {
			return true
		}
	}
	return false
}
