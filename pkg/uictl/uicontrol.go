package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is a Number that can go below zero.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// CappedDial is a Dial with a maximum cap value.
type CappedDial[N Number] interface {
	Dial[N]
	Cap() (num, max N)
}

// RangedDial is a Dial whose value lies within known bounds.
type RangedDial[N Number] interface {
	Dial[N]
	Bounds() (lo, hi N)
}
