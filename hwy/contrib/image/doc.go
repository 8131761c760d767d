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

// Package image provides feature orientation for 8-bit grayscale images.
//
// A feature (for example a FAST corner) is assigned the direction of the
// intensity gradient over the disk-shaped 7x7 window around it, so that
// descriptors computed later can be rotated into a canonical frame.
//
// # Gradient
//
// The kernel reads the 49 window bytes row by row, widens them to int16
// lanes and accumulates them against two constant weight masks:
//
//	xSum, ySum := Gradient(pix, x, y, stride) // weighted moment
//	angle := FeatureAngle(pix, x, y, stride)  // atan2(ySum, xSum), radians
//
// Gradient dispatches at init time: the lane-parallel BaseGradient on SIMD
// targets, BaseGradientScalar otherwise or when HWY_NO_SIMD is set.
//
// # Window Contract
//
// The window [x-3, x+3] x [y-3, y+3] must lie inside the plane. It is not
// checked; reading past the plane panics. Use WindowInBounds to filter
// points near the border.
//
// # Standard Library Images
//
//	angle := image.GrayFeatureAngle(gray, stdimage.Pt(120, 48))
//
// Points are in the image's own coordinate space, so sub-images work.
package image
