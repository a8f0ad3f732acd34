package overlap

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when a rectangle can't be built from the given corner/dimensions.
	// Either bottom-right corner or dimensions must be provided (exactly one of them), and both height and width must be >= 1.
	ErrInvalidArgument = errors.New("invalid rectangle argument")
	// ErrNotIntersecting is returned by IntersectionRectangle when the rectangles do not intersect.
	// Call IsIntersecting first.
	ErrNotIntersecting = errors.New("rectangles are not intersecting")
)
