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

package image

import "github.com/ajroetker/go-featureangle/hwy"

// Gradient computes the mask-weighted intensity moment (xSum, ySum) of the
// 7x7 window centered at (x, y). See BaseGradient for the contract.
//
// It is initialized to the lane form and replaced by BaseGradientScalar when
// no SIMD target was detected or HWY_NO_SIMD is set.
var Gradient func(pix []uint8, x, y, stride int) (xSum, ySum int16)

func init() {
	Gradient = BaseGradient
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		Gradient = BaseGradientScalar
	}
}
