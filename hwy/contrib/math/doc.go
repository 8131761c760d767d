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

// Package math provides fast approximations of transcendental functions for
// SIMD-oriented kernels. This package corresponds to Google Highway's
// hwy/contrib/math directory.
//
// # Angle Functions
//
//   - FastAtan2[T](y, x T) T - atan2 via a degree-7 minimax polynomial,
//     absolute error below FastAtan2MaxError (about 1.7e-4 rad)
//
// FastAtan2 is branch-light and allocation-free. It is meant for the inner
// loop of feature orientation, where it converts an intensity gradient into
// a rotation angle once per detected feature:
//
//	xSum, ySum := image.Gradient(pix, x, y, stride)
//	angle := math.FastAtan2(float32(ySum), float32(xSum))
//
// Results are in radians in [-π, π]. A zero vector yields 0. The -π end is
// reached only when y < 0, x < 0 and |y|/|x| is too small to register
// against π, which integer gradient sums never produce.
package math
