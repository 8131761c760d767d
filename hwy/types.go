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

// Package hwy provides the small portable SIMD core used by the feature
// orientation kernels, with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against fixed-width vector values, and the runtime picks between the
// lane-parallel form and a plain scalar loop depending on the detected
// instruction set (AVX2, AVX-512, NEON) or the HWY_NO_SIMD override.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-featureangle/hwy"
//
//	// Widen 8 bytes into int16 lanes
//	r := hwy.PromoteU8ToI16x8(row)
//
//	// Multiply-accumulate against a constant weight vector
//	acc = r.MulAdd(weights, acc)
//
//	// Fold the lanes down to a scalar
//	sum := acc.ReduceSum()
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Int16x8Lanes is the number of lanes in an Int16x8.
const Int16x8Lanes = 8

// Int16x8 is a 128-bit vector of eight signed 16-bit lanes.
//
// It is a plain value type: operations return new vectors and never
// allocate, so the compiler can keep it in registers and auto-vectorize the
// lane loops. Arithmetic wraps modulo 2^16 in each lane, like the SSE2 and
// NEON 16-bit integer instructions it models.
type Int16x8 [Int16x8Lanes]int16
