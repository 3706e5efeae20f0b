package core

import "math"

// ONB is an orthonormal basis built around a surface normal, used to
// transform locally sampled directions into world space.
type ONB struct {
	U, V, W Vec3
}

// BuildONBFromW constructs an orthonormal basis whose W axis points along n
func BuildONBFromW(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in this basis into world space
func (onb ONB) Local(a Vec3) Vec3 {
	return onb.U.Multiply(a.X).Add(onb.V.Multiply(a.Y)).Add(onb.W.Multiply(a.Z))
}
