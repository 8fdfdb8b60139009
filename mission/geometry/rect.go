// Package geometry holds the lower-left anchored rectangle used for plateau bounds.
package geometry

import (
	"fmt"

	apperrors "github.com/wricardo/mars-rover/mission/errors"
)

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
// It is immutable once built; compare with ==.
type Rect struct {
	lowerX int
	lowerY int
	width  int
	height int
}

// NewRect builds a rectangle. Width and height must both be positive.
func NewRect(lowerX, lowerY, width, height int) (Rect, error) {
	if width <= 0 {
		return Rect{}, apperrors.Newf(apperrors.CodeInvalidBounds, "rectangle width must be > 0, got %d", width)
	}
	if height <= 0 {
		return Rect{}, apperrors.Newf(apperrors.CodeInvalidBounds, "rectangle height must be > 0, got %d", height)
	}
	return Rect{lowerX: lowerX, lowerY: lowerY, width: width, height: height}, nil
}

func (r Rect) LowerX() int { return r.lowerX }
func (r Rect) LowerY() int { return r.lowerY }
func (r Rect) Width() int  { return r.width }
func (r Rect) Height() int { return r.height }

// UpperRightX returns the largest x inside the rectangle.
func (r Rect) UpperRightX() int {
	return r.lowerX + r.width - 1
}

// UpperRightY returns the largest y inside the rectangle.
func (r Rect) UpperRightY() int {
	return r.lowerY + r.height - 1
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y int) bool {
	xOK := x >= r.lowerX && x <= r.UpperRightX()
	yOK := y >= r.lowerY && y <= r.UpperRightY()
	return xOK && yOK
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)(%d,%d)", r.lowerX, r.lowerY, r.UpperRightX(), r.UpperRightY())
}
