package tiles

// Point is a planar point with X as longitude and Y as latitude.
type Point struct {
	X float64
	Y float64
}

func pointOf(p GeoPoint) Point {
	return Point{X: p.Lng, Y: p.Lat}
}

// Segment - отрезок между двумя точками
type Segment struct {
	A Point
	B Point
}

// NewSegment builds the segment a→b in (lng, lat) space.
func NewSegment(a, b GeoPoint) Segment {
	return Segment{A: pointOf(a), B: pointOf(b)}
}

func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// Intersects reports whether s and o cross, using the counter-clockwise
// orientation test. Collinear and endpoint-touching cases are not crossings.
func (s Segment) Intersects(o Segment) bool {
	return ccw(s.A, o.A, o.B) != ccw(s.B, o.A, o.B) &&
		ccw(s.A, s.B, o.A) != ccw(s.A, s.B, o.B)
}

// Edges returns the top, bottom, right and left edges of the bounds.
func (b TileBounds) Edges() [4]Segment {
	tl, tr := pointOf(b.TopLeft()), pointOf(b.TopRight())
	bl, br := pointOf(b.BottomLeft()), pointOf(b.BottomRight())
	return [4]Segment{
		{A: tl, B: tr},
		{A: bl, B: br},
		{A: tr, B: br},
		{A: tl, B: bl},
	}
}

// CrossedEdges counts how many of the tile's edges s crosses.
func (s Segment) CrossedEdges(t TileCoord) int {
	n := 0
	for _, e := range t.Bounds().Edges() {
		if s.Intersects(e) {
			n++
		}
	}
	return n
}
