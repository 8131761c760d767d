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

// =============================================================================
// Constants for FastAtan2
// =============================================================================

// Minimax coefficients of the odd degree-7 polynomial approximating atan(c)
// on [0, 1]:
//
//	atan(c) ≈ (((c7*c² + c5)*c² + c3)*c² + c1) * c
var (
	atanC1_f32 float32 = 0.9997878412
	atanC3_f32 float32 = -0.325808397
	atanC5_f32 float32 = 0.1555786518
	atanC7_f32 float32 = -0.0443265555479

	atanC1_f64 float64 = 0.9997878412
	atanC3_f64 float64 = -0.325808397
	atanC5_f64 float64 = 0.1555786518
	atanC7_f64 float64 = -0.0443265555479
)

// Smallest positive normal floats. Added to the FastAtan2 denominator so that
// 0/0 evaluates to 0 without a branch.
var (
	smallestNormal_f32 float32 = 0x1p-126
	smallestNormal_f64 float64 = 0x1p-1022
)

// FastAtan2MaxError bounds |FastAtan2(y, x) - atan2(y, x)| in radians,
// including float32 rounding, for inputs whose larger magnitude is at least
// 2^26 times the smallest normal float. Inputs nearer the subnormal range
// exceed it; see FastAtan2.
const FastAtan2MaxError = 2e-4
