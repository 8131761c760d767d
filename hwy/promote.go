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

// PromoteU8ToI16x8 widens up to 8 bytes of src into int16 lanes
// (zero-extended). Lanes beyond len(src) are zero, so a caller can load a
// 7-byte row without touching the byte after it.
func PromoteU8ToI16x8(src []uint8) Int16x8 {
	var v Int16x8
	n := min(len(src), Int16x8Lanes)
	for i := 0; i < n; i++ {
		v[i] = int16(src[i])
	}
	return v
}

// DemoteI32ToI16 narrows an int32 to int16 with wraparound, matching the
// lane behavior of Int16x8 arithmetic.
func DemoteI32ToI16(v int32) int16 {
	return int16(v)
}
