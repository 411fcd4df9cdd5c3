package sim

// Contacts records what the collision sweep hit during one frame.
type Contacts struct {
	Walls   int     // horizontal overlaps
	Landed  bool    // downward contact; the blob is grounded
	Impact  float64 // vertical speed at landing
	Ceiling bool    // upward contact

	// Platforms holds the indices of every platform overlapped, in the
	// order they were visited.
	Platforms []int
}

// Resolve moves the blob by its velocity, one axis at a time, against the
// level's platforms.
//
// Every overlapping platform is visited in array order and the branch taken
// depends on the velocity at that moment. The first contact on an axis
// zeroes that velocity, so later horizontal overlaps only count as wall
// hits and later vertical overlaps are ignored.
func Resolve(b *Blob, l *Level, dt float64) Contacts {
	var c Contacts

	start := b.Box()
	box := start

	box.X += b.VX * dt
	near := make([]bool, len(l.Platforms))
	l.mark(near, start.Union(box))
	for i, p := range l.Platforms {
		if !near[i] || !Overlap(box, p) {
			continue
		}
		if b.VX > 0 {
			box.X = p.X - box.W
		} else if b.VX < 0 {
			box.X = p.X + p.W
		}
		if b.VX != 0 {
			l.mark(near, box)
		}
		b.VX = 0
		c.Walls++
		c.Platforms = append(c.Platforms, i)
	}

	// The vertical sweep starts where the horizontal one ended.
	start = box
	box.Y += b.VY * dt
	b.Grounded = false

	near = make([]bool, len(l.Platforms))
	l.mark(near, start.Union(box))
	for i, p := range l.Platforms {
		if !near[i] || !Overlap(box, p) {
			continue
		}
		if b.VY > 0 {
			box.Y = p.Y - box.H
			c.Landed = true
			c.Impact = b.VY
			b.VY = 0
			b.Grounded = true
			l.mark(near, box)
		} else if b.VY < 0 {
			box.Y = p.Y + p.H
			c.Ceiling = true
			b.VY = 0
			l.mark(near, box)
		}
		c.Platforms = append(c.Platforms, i)
	}

	center := box.Center()
	b.X = Clamp(center.X, b.Radius, l.Width-b.Radius)
	b.Y = center.Y

	return c
}
