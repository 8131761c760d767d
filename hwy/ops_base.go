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

package hwy

// MulAdd returns v*w + acc per lane.
func (v Int16x8) MulAdd(w, acc Int16x8) Int16x8 {
	for i := range v {
		acc[i] += v[i] * w[i]
	}
	return acc
}

// ReduceSum returns the sum of all lanes.
//
// The reduction folds the vector in halves (lanes i and i+4, then i and i+2,
// then i and i+1), the same order a shuffle-and-add sequence uses on
// hardware. The result wraps modulo 2^16.
func (v Int16x8) ReduceSum() int16 {
	a0 := v[0] + v[4]
	a1 := v[1] + v[5]
	a2 := v[2] + v[6]
	a3 := v[3] + v[7]
	b0 := a0 + a2
	b1 := a1 + a3
	return b0 + b1
}
