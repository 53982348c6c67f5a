package draw

import "math"

// pixelBounds converts a logical rect to an inclusive pixel range.
// Every non-empty rect covers at least one pixel.
func (c *Canvas) pixelBounds(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * c.scaleX))
	y0 = int(math.Floor(r.Y * c.scaleY))
	x1 = int(math.Ceil((r.X+r.W)*c.scaleX)) - 1
	y1 = int(math.Ceil((r.Y+r.H)*c.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)
	return
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(r Rect, col Color) {
	x0, y0, x1, y1 := c.pixelBounds(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// StrokeRect draws the one pixel outline of a logical rectangle.
func (c *Canvas) StrokeRect(r Rect, col Color) {
	x0, y0, x1, y1 := c.pixelBounds(r)
	c.bresenham(x0, y0, x1, y0, col)
	c.bresenham(x0, y1, x1, y1, col)
	c.bresenham(x0, y0, x0, y1, col)
	c.bresenham(x1, y0, x1, y1, col)
}

// FillEllipse fills the ellipse inscribed in a logical rectangle. Ellipses
// smaller than a pixel on either axis degrade to a filled rect.
func (c *Canvas) FillEllipse(r Rect, col Color) {
	rx := r.W * c.scaleX / 2
	ry := r.H * c.scaleY / 2
	if rx < 1 || ry < 1 {
		c.FillRect(r, col)
		return
	}
	cx := (r.X + r.W/2) * c.scaleX
	cy := (r.Y + r.H/2) * c.scaleY

	x0, y0, x1, y1 := c.pixelBounds(r)
	for y := y0; y <= y1; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				c.setPixel(x, y, col)
			}
		}
	}
}

// ThickLine draws a line of the given logical width as parallel pixel lines.
func (c *Canvas) ThickLine(p1, p2 Point, col Color, width float64) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	// Offset along the normal of the dominant axis
	horizontal := abs(x2-x1) >= abs(y2-y1)
	var thickness int
	if horizontal {
		thickness = int(math.Round(width * c.scaleY))
	} else {
		thickness = int(math.Round(width * c.scaleX))
	}
	thickness = max(thickness, 1)

	for i := 0; i < thickness; i++ {
		off := i - thickness/2
		if horizontal {
			c.bresenham(x1, y1+off, x2, y2+off, col)
		} else {
			c.bresenham(x1+off, y1, x2+off, y2, col)
		}
	}
}
