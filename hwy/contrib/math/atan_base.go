// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"
	"unsafe"

	"github.com/ajroetker/go-featureangle/hwy"
)

// FastAtan2 approximates atan2(y, x), returning an angle in radians in
// [-π, π].
//
// The angle is measured from the +x axis and increases towards +y. The
// absolute error against the exact arctangent stays below FastAtan2MaxError
// whenever max(|x|, |y|) is at least 2^26 times the smallest normal value of
// T (0x1p-100 for float32, 0x1p-996 for float64). Closer to the subnormal
// range the ε guard in the denominator dominates and the error grows: in
// float32, FastAtan2(1e-40, 1e-40) is about 0.0084 instead of π/4.
//
// The result is -π, not a value just above it, when y < 0, x < 0 and |y|/|x|
// is too small to change π - atan(|y|/|x|) in T (below about 1.2e-7 for
// float32). FastAtan2(-1e-30, -1e10) returns exactly -π; math.Atan2 behaves
// the same way once its result is rounded to float32.
//
// Algorithm: the smaller of |x| and |y| is divided by the larger, which
// reduces the argument to c ∈ [0, 1]. A degree-7 odd minimax polynomial gives
// atan(c); when |y| > |x| the result is reflected to π/2 - atan(c). The sign
// of x and then the sign of y restore the quadrant.
//
// Special cases:
//   - FastAtan2(0, 0) = 0 (no direction; not an error)
//   - FastAtan2(0, x>0) = 0
//   - FastAtan2(y>0, 0) = π/2
//   - FastAtan2(±0, x<0) = +π
//   - FastAtan2(y<0, x<0) = -π when |y|/|x| underflows or rounds away
//
// Results for NaN or infinite inputs are unspecified.
func FastAtan2[T hwy.Floats](y, x T) T {
	ax := abs(x)
	ay := abs(y)

	var a T
	if ax >= ay {
		c := ay / (ax + smallestNormal[T]())
		a = atanPoly(c)
	} else {
		c := ax / (ay + smallestNormal[T]())
		a = T(stdmath.Pi/2) - atanPoly(c)
	}

	if x < 0 {
		a = T(stdmath.Pi) - a
	}
	if y < 0 {
		a = -a
	}
	return a
}

// atanPoly evaluates the atan polynomial at c ∈ [0, 1] with Horner's method.
func atanPoly[T hwy.Floats](c T) T {
	var c1, c3, c5, c7 T
	if unsafe.Sizeof(c) == 4 {
		c1, c3, c5, c7 = T(atanC1_f32), T(atanC3_f32), T(atanC5_f32), T(atanC7_f32)
	} else {
		c1, c3, c5, c7 = T(atanC1_f64), T(atanC3_f64), T(atanC5_f64), T(atanC7_f64)
	}
	cc := c * c
	return (((c7*cc+c5)*cc+c3)*cc + c1) * c
}

func smallestNormal[T hwy.Floats]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(smallestNormal_f32)
	}
	return T(smallestNormal_f64)
}

func abs[T hwy.Floats](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
