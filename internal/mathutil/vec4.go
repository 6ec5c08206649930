package mathutil

// Vec4 is a 4-component homogeneous vector (value type, stack-allocated).
// Used for clip-space positions: (x, y, z, w).
type Vec4 [4]float64

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Lerp returns (1-t)*v + t*b, the clip-space interior point used by the clipper.
func (v Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Vec4{
		v[0] + t*(b[0]-v[0]),
		v[1] + t*(b[1]-v[1]),
		v[2] + t*(b[2]-v[2]),
		v[3] + t*(b[3]-v[3]),
	}
}
