package model

// Side identifies one of the two competing players. Black moves first.
type Side int

const (
	Black Side = iota
	White
)

// Sides lists both sides in turn order
var Sides = [2]Side{Black, White}

// Opposite returns the other side
func (s Side) Opposite() Side {
	return 1 - s
}

// Index returns the side as an index into per-side pairs
func (s Side) Index() int {
	return int(s)
}

// String returns the upper-case side name
func (s Side) String() string {
	switch s {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the single-character board glyph for the side
func (s Side) Glyph() byte {
	if s == White {
		return 'w'
	}
	return 'b'
}
