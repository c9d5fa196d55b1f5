package domain

// Axis is the single active translation dimension
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Valid reports whether the axis is one of the known values
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY
}

// Dimension returns the size dimension projected by the axis
func (a Axis) Dimension() Dimension {
	if a == AxisY {
		return Height
	}
	return Width
}

// Cross returns the other axis
func (a Axis) Cross() Axis {
	if a == AxisY {
		return AxisX
	}
	return AxisY
}

// Dimension names a size component
type Dimension string

const (
	Width  Dimension = "width"
	Height Dimension = "height"
)

// Size is a width/height pair
type Size struct {
	Width  float64
	Height float64
}

// Get returns the named component
func (s Size) Get(d Dimension) float64 {
	if d == Height {
		return s.Height
	}
	return s.Width
}

// With returns a copy of s with the named component replaced
func (s Size) With(d Dimension, value float64) Size {
	if d == Height {
		s.Height = value
	} else {
		s.Width = value
	}
	return s
}

// Vector is a two-axis coordinate where only the active axis is usually populated
type Vector struct {
	X float64
	Y float64
}

// Get returns the coordinate on the given axis
func (v Vector) Get(a Axis) float64 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

// With returns a copy of v with the coordinate on axis a replaced
func (v Vector) With(a Axis, value float64) Vector {
	if a == AxisY {
		v.Y = value
	} else {
		v.X = value
	}
	return v
}
