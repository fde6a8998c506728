package navgeo

// Path accumulates the vertices of a polyline on the sphere.
// The zero value is an empty path ready to use.
type Path struct {
	points []Coordinates
	length Length
}

// AddPoint adds a vertex to the path.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Path) AddPoint(lat, lon float64) {
	p.add(NewCoordinates(lat, lon))
}

// AddEdge adds an edge to the path, ending at the point reached from the
// current vertex on the given bearing. It does nothing on an empty path.
//
// Param azi is the bearing at the current point (degrees).
// Param s is the distance from the current point to the next point (meters).
func (p *Path) AddEdge(azi, s float64) {
	last, ok := p.Last()
	if !ok {
		return
	}
	p.add(last.BearingDistance(Degrees(azi), Length(s)))
}

func (p *Path) add(c Coordinates) {
	if last, ok := p.Last(); ok {
		p.length += last.DistanceTo(c)
	}
	p.points = append(p.points, c)
}

// Last returns the most recently added vertex.
func (p *Path) Last() (Coordinates, bool) {
	if len(p.points) == 0 {
		return Coordinates{}, false
	}
	return p.points[len(p.points)-1], true
}

// Points returns the vertices of the path.
func (p *Path) Points() []Coordinates {
	return append([]Coordinates(nil), p.points...)
}

// Compute returns the number of vertices and the length of the path.
// More points can be added afterwards.
func (p *Path) Compute() (n int, length Length) {
	return len(p.points), p.length
}

// Clear empties the path, allowing a new one to be started.
func (p *Path) Clear() {
	p.points = p.points[:0]
	p.length = 0
}
