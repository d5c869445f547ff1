package rttable

import "fmt"

type ErrInvalidSurfaceID struct {
	Err error
}

func (e ErrInvalidSurfaceID) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid surface ID: %v", e.Err)
	}
	return "invalid surface ID"
}

func (e ErrInvalidSurfaceID) Unwrap() error {
	return e.Err
}

type ErrSurfaceNotRegistered struct {
	SurfaceID SurfaceID
}

func (e ErrSurfaceNotRegistered) Error() string {
	return fmt.Sprintf("surface %s is not registered in the render target table", e.SurfaceID)
}

type ErrNoFreeIndex struct{}

func (ErrNoFreeIndex) Error() string {
	return "no free frame index: every registered surface is still used by a recent picture"
}
