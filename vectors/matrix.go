package vectors

import (
	"errors"
	"math"
)

// ErrNotInvertible is returned when a transform has a zero determinant.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Mat4 is a row-major 4×4 affine transform.
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns A·B.
func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// MulPoint transforms p as a point (w = 1), so translation applies.
func (A Mat4) MulPoint(p Vec3) Vec3 {
	m := &A.M
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MulVector transforms v as a direction (w = 0), ignoring translation.
func (A Mat4) MulVector(v Vec3) Vec3 {
	m := &A.M
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Determinant expands along the first row using 3×3 minors.
func (A Mat4) Determinant() float64 {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += A.M[0][c] * A.cofactor(0, c)
	}
	return det
}

func (A Mat4) minor(row, col int) float64 {
	var s [3][3]float64
	ri := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			s[ri][ci] = A.M[r][c]
			ci++
		}
		ri++
	}
	return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
}

func (A Mat4) cofactor(row, col int) float64 {
	m := A.minor(row, col)
	if (row+col)%2 == 1 {
		return -m
	}
	return m
}

// Inverse returns A⁻¹ or ErrNotInvertible.
func (A Mat4) Inverse() (Mat4, error) {
	det := A.Determinant()
	if math.Abs(det) < 1e-12 {
		return Mat4{}, ErrNotInvertible
	}
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// transposed cofactor
			R.M[c][r] = A.cofactor(r, c) / det
		}
	}
	return R, nil
}

// Approx reports whether all entries of A are within EPSILON of B.
func (A Mat4) Approx(B Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !ApproxEqual(A.M[r][c], B.M[r][c]) {
				return false
			}
		}
	}
	return true
}

func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m.M[0][3], m.M[1][3], m.M[2][3] = x, y, z
	return m
}

func Scaling(x, y, z float64) Mat4 {
	m := Identity()
	m.M[0][0], m.M[1][1], m.M[2][2] = x, y, z
	return m
}

// RotationX rotates by r radians around the x axis.
func RotationX(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m.M[1][1], m.M[1][2] = c, -s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

// RotationY rotates by r radians around the y axis.
func RotationY(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = -s, c
	return m
}

// RotationZ rotates by r radians around the z axis.
func RotationZ(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// Shearing moves each component in proportion to the other two.
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	m := Identity()
	m.M[0][1], m.M[0][2] = xy, xz
	m.M[1][0], m.M[1][2] = yx, yz
	m.M[2][0], m.M[2][1] = zx, zy
	return m
}

// ViewTransform orients the world relative to an eye at from looking at to.
func ViewTransform(from, to, up Vec3) Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := Mat4{M: [4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
