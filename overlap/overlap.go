package overlap

import "github.com/pkg/errors"

// IsIntersecting checks if two rectangles are intersecting.
//
// Rectangles that only share an edge or a corner are NOT intersecting: the separation test uses >= on inclusive corners.
// As a consequence a rectangle with height or width equal to 1 does not intersect itself.
func IsIntersecting(r1, r2 Rectangle) bool {
	// One rectangle is on left side of other
	if r1.topLeft.Col >= r2.bottomRight.Col || r2.topLeft.Col >= r1.bottomRight.Col {
		return false
	}
	// One rectangle is above other
	if r1.topLeft.Row >= r2.bottomRight.Row || r2.topLeft.Row >= r1.bottomRight.Row {
		return false
	}
	return true
}

// IntersectionRectangle returns the rectangle covered by both r1 and r2.
//
// Caller must check IsIntersecting first: ErrNotIntersecting is returned otherwise.
// This differs from IntersectionArea and UnionArea on purpose, since those treat disjoint rectangles as zero overlap.
func IntersectionRectangle(r1, r2 Rectangle) (Rectangle, error) {
	if !IsIntersecting(r1, r2) {
		return Rectangle{}, errors.Wrapf(ErrNotIntersecting, "%s and %s", r1, r2)
	}
	return intersection(r1, r2), nil
}

// IntersectionArea returns area of intersection between two rectangles. Zero is returned for non-intersecting rectangles.
func IntersectionArea(r1, r2 Rectangle) int {
	if !IsIntersecting(r1, r2) {
		return 0
	}
	return intersection(r1, r2).Area()
}

// UnionArea returns area covered by at least one of the rectangles.
// Result may overflow int when both rectangles are close to the maximum area; IntersectionOverUnion does not suffer from this.
func UnionArea(r1, r2 Rectangle) int {
	return r1.Area() + r2.Area() - IntersectionArea(r1, r2)
}

// IntersectionOverUnion calculates Intersection over Union (IoU) between two rectangles.
// Value is in [0; 1]: 0 for no overlap, 1 for identical rectangles.
// Union area is always positive since every rectangle has area >= 1.
func IntersectionOverUnion(r1, r2 Rectangle) float64 {
	interArea := IntersectionArea(r1, r2)
	if interArea == 0 {
		return 0.0
	}
	// float64 keeps the union exact for typical boxes and avoids int overflow for huge ones
	unionArea := float64(r1.Area()) + float64(r2.Area()) - float64(interArea)
	return float64(interArea) / unionArea
}

// Overlap returns the intersection rectangle and true, or zero Rectangle and false when IsIntersecting(r1, r2) is false.
// It follows the same boundary rule as IsIntersecting: shared edges and corners are not an overlap.
func Overlap(r1, r2 Rectangle) (Rectangle, bool) {
	if !IsIntersecting(r1, r2) {
		return Rectangle{}, false
	}
	return intersection(r1, r2), true
}

// Touches checks if two rectangles intersect or are in contact.
//
// Every pixel (r, c) is treated as the unit square [r; r+1) x [c; c+1), so rectangles which share a
// pixel, lie side by side or meet diagonally in a corner are all touching. Any gap of at least one pixel
// on either axis separates them. Touches is true whenever IsIntersecting is.
func Touches(r1, r2 Rectangle) bool {
	if separated(r1.bottomRight.Col, r2.topLeft.Col) || separated(r2.bottomRight.Col, r1.topLeft.Col) {
		return false
	}
	if separated(r1.bottomRight.Row, r2.topLeft.Row) || separated(r2.bottomRight.Row, r1.topLeft.Row) {
		return false
	}
	return true
}

// separated reports whether there is at least one full pixel between last and first (last < first-1) without overflow
func separated(last, first int) bool {
	return first > last && first-1 > last
}

// intersection assumes IsIntersecting(r1, r2) holds
func intersection(r1, r2 Rectangle) Rectangle {
	return Rectangle{
		topLeft:     maxPoint(r1.topLeft, r2.topLeft),
		bottomRight: minPoint(r1.bottomRight, r2.bottomRight),
	}
}
