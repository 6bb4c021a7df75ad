package tilegrid

import "fmt"

// Pos is a signed map coordinate. Z is 0 (surface) or 1 (underground).
type Pos struct {
	X, Y, Z int
}

// String renders the position for logs and error messages.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Add returns the component-wise sum of p and o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns the component-wise difference p - o.
func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// pack encodes p into a single int64 key, stable for use as a map key or
// sort key. Safe for maps up to 2^20 per axis, far beyond any playable size.
func (p Pos) pack() int64 {
	const bits = 21
	const mask = int64(1)<<bits - 1
	return (int64(p.Z)&1)<<(2*bits) | (int64(p.Y)&mask)<<bits | (int64(p.X) & mask)
}

// Less provides a total order over positions, used to keep Regions sorted.
func (p Pos) Less(o Pos) bool {
	return p.pack() < o.pack()
}

// Key returns a hashable representation of p, suitable for map[Pos]T usage
// (Pos is already comparable, Key exists for call sites that want an
// explicit integer key instead, e.g. building dense indices).
func (p Pos) Key() int64 { return p.pack() }
