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

// BaseGradient computes the mask-weighted intensity moment of the 7x7 window
// centered at (x, y) in a row-major 8-bit plane with the given stride.
//
// Each window row is widened to int16 lanes, multiplied by the row's MaskX
// and MaskY vectors and accumulated per column; the column totals are folded
// to two scalars at the end. With 8-bit input the magnitude of either sum
// never exceeds 26*255, so the int16 lanes cannot wrap.
//
// The caller guarantees that [x-3, x+3] x [y-3, y+3] lies inside pix.
// Only those 49 bytes are read; a window that does not fit panics.
func BaseGradient(pix []uint8, x, y, stride int) (xSum, ySum int16) {
	off := (y-Radius)*stride + (x - Radius)

	var xAcc, yAcc hwy.Int16x8
	for r := 0; r < Size; r++ {
		row := hwy.PromoteU8ToI16x8(pix[off : off+Size : off+Size])
		xAcc = row.MulAdd(MaskX[r], xAcc)
		yAcc = row.MulAdd(MaskY[r], yAcc)
		off += stride
	}

	return xAcc.ReduceSum(), yAcc.ReduceSum()
}

// BaseGradientScalar is the plain 49-term form of BaseGradient. It
// accumulates in int32 and returns the same sums.
func BaseGradientScalar(pix []uint8, x, y, stride int) (xSum, ySum int16) {
	off := (y-Radius)*stride + (x - Radius)

	var sx, sy int32
	for r := 0; r < Size; r++ {
		row := pix[off : off+Size]
		for c, p := range row {
			sx += int32(p) * int32(MaskX[r][c])
			sy += int32(p) * int32(MaskY[r][c])
		}
		off += stride
	}

	return hwy.DemoteI32ToI16(sx), hwy.DemoteI32ToI16(sy)
}
