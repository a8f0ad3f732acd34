package overlap

import (
	"fmt"
	"image"
	"math"

	"github.com/pkg/errors"
)

// Rectangle is an axis-aligned box defined by inclusive top-left and bottom-right (row, col) corners.
// Rectangle is immutable: use New (or one of its shortcuts) to build it.
// The zero value is the 1x1 rectangle at (0, 0).
type Rectangle struct {
	topLeft     Point
	bottomRight Point
}

// Dimensions is the (height, width) pair of a rectangle
type Dimensions struct {
	Height int
	Width  int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%d, %d)", d.Height, d.Width)
}

type rectangleOptions struct {
	bottomRight *Point
	dimensions  *Dimensions
	provided    int
}

// Option configures how the second corner of a rectangle is derived.
type Option func(*rectangleOptions)

// WithBottomRight sets inclusive bottom-right corner of the rectangle.
func WithBottomRight(bottomRight Point) Option {
	return func(o *rectangleOptions) {
		o.bottomRight = &bottomRight
		o.provided++
	}
}

// WithDimensions sets height and width of the rectangle. Bottom-right corner is computed as topLeft + (height-1, width-1).
func WithDimensions(height, width int) Option {
	return func(o *rectangleOptions) {
		o.dimensions = &Dimensions{Height: height, Width: width}
		o.provided++
	}
}

// New creates a rectangle from its top-left corner and exactly one of WithBottomRight or WithDimensions.
//
// ErrInvalidArgument is returned if none or more than one option is provided,
// if the resulting height or width is lower than 1, or if height, width or area does not fit into int.
func New(topLeft Point, opts ...Option) (Rectangle, error) {
	o := rectangleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.provided == 0:
		return Rectangle{}, errors.Wrap(ErrInvalidArgument, "one of bottom-right corner or dimensions should be provided")
	case o.provided > 1:
		return Rectangle{}, errors.Wrap(ErrInvalidArgument, "either specify bottom-right corner or dimensions, not both")
	}

	var bottomRight Point
	if o.bottomRight != nil {
		bottomRight = *o.bottomRight
	} else {
		if o.dimensions.Height < 1 || o.dimensions.Width < 1 {
			return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "dimensions %s should be positive", o.dimensions)
		}
		if topLeft.Row > math.MaxInt-(o.dimensions.Height-1) || topLeft.Col > math.MaxInt-(o.dimensions.Width-1) {
			return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "dimensions %s overflow from top-left corner %s", o.dimensions, topLeft)
		}
		bottomRight = topLeft.Add(Point{Row: o.dimensions.Height - 1, Col: o.dimensions.Width - 1})
	}

	if bottomRight.Row < topLeft.Row || bottomRight.Col < topLeft.Col {
		return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "bottom-right corner %s is above or left of top-left corner %s", bottomRight, topLeft)
	}
	// Spans wrap to negative when they do not fit into int; height and width need one more.
	spanRows := bottomRight.Row - topLeft.Row
	spanCols := bottomRight.Col - topLeft.Col
	if spanRows < 0 || spanRows >= math.MaxInt || spanCols < 0 || spanCols >= math.MaxInt {
		return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "rectangle from %s to %s is too large", topLeft, bottomRight)
	}
	if height, width := spanRows+1, spanCols+1; height > math.MaxInt/width {
		return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "area of rectangle from %s to %s overflows", topLeft, bottomRight)
	}
	return Rectangle{
		topLeft:     topLeft,
		bottomRight: bottomRight,
	}, nil
}

// NewFromCorners is a shortcut for New(topLeft, WithBottomRight(bottomRight))
func NewFromCorners(topLeft, bottomRight Point) (Rectangle, error) {
	return New(topLeft, WithBottomRight(bottomRight))
}

// NewFromDimensions is a shortcut for New(topLeft, WithDimensions(height, width))
func NewFromDimensions(topLeft Point, height, width int) (Rectangle, error) {
	return New(topLeft, WithDimensions(height, width))
}

// MustNew is like New but panics on error. Intended for literals which are known to be valid.
func MustNew(topLeft Point, opts ...Option) Rectangle {
	rect, err := New(topLeft, opts...)
	if err != nil {
		panic(err)
	}
	return rect
}

// NewFromImageRect converts image.Rectangle (exclusive Max) into inclusive Rectangle.
// Empty image rectangles are rejected with ErrInvalidArgument.
func NewFromImageRect(rect image.Rectangle) (Rectangle, error) {
	rect = rect.Canon()
	if rect.Empty() {
		return Rectangle{}, errors.Wrapf(ErrInvalidArgument, "empty image rectangle %v", rect)
	}
	return NewFromCorners(NewPointFrom(rect.Min), NewPointFrom(rect.Max.Sub(image.Pt(1, 1))))
}

// TopLeft returns inclusive top-left corner
func (r Rectangle) TopLeft() Point {
	return r.topLeft
}

// BottomRight returns inclusive bottom-right corner
func (r Rectangle) BottomRight() Point {
	return r.bottomRight
}

// Height returns number of rows covered by the rectangle
func (r Rectangle) Height() int {
	return r.bottomRight.Row - r.topLeft.Row + 1
}

// Width returns number of columns covered by the rectangle
func (r Rectangle) Width() int {
	return r.bottomRight.Col - r.topLeft.Col + 1
}

// Area returns number of pixels covered by the rectangle
func (r Rectangle) Area() int {
	return r.Height() * r.Width()
}

// Dimensions returns (height, width) of the rectangle
func (r Rectangle) Dimensions() Dimensions {
	return Dimensions{Height: r.Height(), Width: r.Width()}
}

// Size is an alias for Dimensions
func (r Rectangle) Size() Dimensions {
	return r.Dimensions()
}

// ImageRect returns equivalent image.Rectangle. Note: Max is exclusive there.
func (r Rectangle) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: r.topLeft.ImagePoint(),
		Max: r.bottomRight.ImagePoint().Add(image.Pt(1, 1)),
	}
}

// Equal returns true if both rectangles have the same corners.
// Comparing against anything other than Rectangle does not compile, so there is no runtime type check.
func (r Rectangle) Equal(other Rectangle) bool {
	return r.topLeft == other.topLeft && r.bottomRight == other.bottomRight
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s, bottom_right=%s)", r.topLeft, r.bottomRight)
}

// GoString implements fmt.GoStringer
func (r Rectangle) GoString() string {
	return fmt.Sprintf("overlap.MustNew(overlap.NewPoint(%d, %d), overlap.WithBottomRight(overlap.NewPoint(%d, %d)))",
		r.topLeft.Row, r.topLeft.Col, r.bottomRight.Row, r.bottomRight.Col)
}
