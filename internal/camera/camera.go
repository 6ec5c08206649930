// Package camera builds the model and view-projection matrices the demo
// feeds into the vertex shader's uniform block.
package camera

import (
	"clipraster/internal/mathutil"
)

// DefaultFOV is the vertical field of view, in degrees, used when a
// caller leaves Options.FOV at zero.
const DefaultFOV = 40.0

// Options describes one camera placement on the orbit around the model.
type Options struct {
	Angle        float64 // orbit angle around Y, degrees
	Elevation    float64 // camera elevation above the horizon, degrees
	Distance     float64 // eye distance from the origin
	FOV          float64 // vertical field of view, degrees (perspective only)
	Aspect       float64 // width / height
	Near, Far    float64
	Orthographic bool
	OrthoExtent  float64 // half-height of the view box (orthographic only)
}

// ModelRotation returns the turntable rotation for a frame: the model
// spins around Y by angleDeg and tilts around X by tiltDeg. Built through a
// quaternion so chained angles stay orthonormal.
func ModelRotation(angleDeg, tiltDeg float64) mathutil.Mat3 {
	q := mathutil.EulerToQuat(mathutil.Deg2Rad(tiltDeg), mathutil.Deg2Rad(angleDeg), 0)
	return mathutil.QuatToMat3(q)
}

// View returns the world-to-camera matrix for o. Near the poles
// (elevation within 5° of straight up or down) the Y up-vector
// degenerates against the view direction, so the camera routes to a
// Z up-vector there.
func View(o Options) mathutil.Mat4 {
	elev := mathutil.Deg2Rad(o.Elevation)
	rot := mathutil.Mat3Mul(mathutil.RotY(mathutil.Deg2Rad(o.Angle)), mathutil.RotX(-elev))
	eye := rot.MulVec3(mathutil.Vec3{0, 0, o.Distance})

	up := mathutil.Vec3{0, 1, 0}
	if mathutil.AngleDist(o.Elevation, 90) <= 5 || mathutil.AngleDist(o.Elevation, 270) <= 5 {
		up = mathutil.Vec3{0, 0, 1}
	}
	return mathutil.LookAt(eye, mathutil.Vec3{}, up)
}

// Projection returns the camera-to-clip matrix for o, mapping the
// frustum to the canonical volume |x|,|y|,|z| ≤ w.
func Projection(o Options) mathutil.Mat4 {
	near, far := o.Near, o.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 100
	}
	aspect := o.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	if o.Orthographic {
		ext := o.OrthoExtent
		if ext <= 0 {
			ext = 1
		}
		return mathutil.Orthographic(-ext*aspect, ext*aspect, -ext, ext, near, far)
	}

	fov := o.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	return mathutil.Perspective(mathutil.Deg2Rad(fov), aspect, near, far)
}

// ViewProjection composes Projection × View.
func ViewProjection(o Options) mathutil.Mat4 {
	return mathutil.Mat4Mul(Projection(o), View(o))
}

// NormalMatrix returns the inverse-transpose of a model rotation, the
// matrix that keeps shading normals perpendicular to their surfaces.
// For a pure rotation this equals the rotation itself; scaled models
// need the full inverse-transpose.
func NormalMatrix(model mathutil.Mat3) mathutil.Mat3 {
	return model.Inverse().Transpose()
}
