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

import (
	stdimage "image"

	"github.com/ajroetker/go-featureangle/hwy/contrib/math"
)

// FeatureAngle returns the orientation, in radians in (-π, π], of the
// feature centered at (x, y): the direction of the intensity gradient over
// the circular 7x7 window. 0 points along +x and π/2 along +y (down the
// image). A window of uniform intensity yields 0.
//
// pix is a row-major 8-bit plane and stride the distance in bytes between
// rows; the window must lie inside pix, as for Gradient.
func FeatureAngle(pix []uint8, x, y, stride int) float32 {
	xSum, ySum := Gradient(pix, x, y, stride)
	return math.FastAtan2(float32(ySum), float32(xSum))
}

// WindowInBounds reports whether the 7x7 window centered at p lies entirely
// inside r. Callers that cannot otherwise guarantee the window contract use
// it to filter feature points before calling FeatureAngle.
func WindowInBounds(r stdimage.Rectangle, p stdimage.Point) bool {
	return p.X-Radius >= r.Min.X && p.X+Radius < r.Max.X &&
		p.Y-Radius >= r.Min.Y && p.Y+Radius < r.Max.Y
}

// GrayGradient is Gradient for a point p of img, in img's coordinate space.
// Sub-images (non-zero img.Rect.Min) are handled.
func GrayGradient(img *stdimage.Gray, p stdimage.Point) (xSum, ySum int16) {
	return Gradient(img.Pix, p.X-img.Rect.Min.X, p.Y-img.Rect.Min.Y, img.Stride)
}

// GrayFeatureAngle is FeatureAngle for a point p of img.
func GrayFeatureAngle(img *stdimage.Gray, p stdimage.Point) float32 {
	xSum, ySum := GrayGradient(img, p)
	return math.FastAtan2(float32(ySum), float32(xSum))
}
