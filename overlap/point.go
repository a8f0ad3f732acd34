package overlap

import (
	"fmt"
	"image"
)

// Point is an integer (row, col) pixel coordinate.
type Point struct {
	Row int
	Col int
}

// NewPoint creates point from row and column
func NewPoint(row, col int) Point {
	return Point{
		Row: row,
		Col: col,
	}
}

// NewPointFrom converts image.Point (X is the column, Y is the row).
func NewPointFrom(point image.Point) Point {
	return Point{
		Row: point.Y,
		Col: point.X,
	}
}

// Add returns p+q element-wise
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns p-q element-wise
func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// ImagePoint returns p as image.Point
func (p Point) ImagePoint() image.Point {
	return image.Point{X: p.Col, Y: p.Row}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func maxPoint(p, q Point) Point {
	return Point{Row: max(p.Row, q.Row), Col: max(p.Col, q.Col)}
}

func minPoint(p, q Point) Point {
	return Point{Row: min(p.Row, q.Row), Col: min(p.Col, q.Col)}
}
