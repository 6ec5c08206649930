package mathutil

import "math"

// Quat is a unit quaternion stored as (x, y, z, w).
type Quat [4]float64

// EulerToQuat builds the quaternion for Euler XYZ angles in radians,
// applied in X-then-Y-then-Z order.
func EulerToQuat(rx, ry, rz float64) Quat {
	sx, cx := math.Sincos(rx / 2)
	sy, cy := math.Sincos(ry / 2)
	sz, cz := math.Sincos(rz / 2)

	return Quat{
		sx*cy*cz - cx*sy*sz,
		cx*sy*cz + sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		cx*cy*cz + sx*sy*sz,
	}
}

// QuatToMat3 expands a unit quaternion into its rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]

	xx, yy, zz := 2*x*x, 2*y*y, 2*z*z
	xy, xz, yz := 2*x*y, 2*x*z, 2*y*z
	wx, wy, wz := 2*w*x, 2*w*y, 2*w*z

	return Mat3{
		1 - yy - zz, xy - wz, xz + wy,
		xy + wz, 1 - xx - zz, yz - wx,
		xz - wy, yz + wx, 1 - xx - yy,
	}
}
