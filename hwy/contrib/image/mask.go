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

const (
	// Radius is the distance from the feature center to the window edge.
	Radius = 3

	// Size is the width and height of the sampled window.
	Size = 2*Radius + 1
)

// The 7x7 window samples a disk of radius ~3.5; the corners carry no weight:
//
//	    0 1 2 3 4 5 6
//	  +--------------
//	0 | - - x x x - -
//	1 | - x x x x x -
//	2 | x x x x x x x
//	3 | x x x o x x x
//	4 | x x x x x x x
//	5 | - x x x x x -
//	6 | - - x x x - -
//
// Each row is one Int16x8; lane 7 is padding and always zero.

// MaskX holds the horizontal weights: the signed column offset from the
// center, scaled per row to the width of the disk at that row. It is
// antisymmetric about column 3 and symmetric about row 3.
var MaskX = [Size]hwy.Int16x8{
	{0, 0, -1, 0, 1, 0, 0, 0},
	{0, -2, -1, 0, 1, 2, 0, 0},
	{-3, -2, -1, 0, 1, 2, 3, 0},
	{-3, -2, -1, 0, 1, 2, 3, 0},
	{-3, -2, -1, 0, 1, 2, 3, 0},
	{0, -2, -1, 0, 1, 2, 0, 0},
	{0, 0, -1, 0, 1, 0, 0, 0},
}

// MaskY holds the vertical weights. Rows grow downward, so rows below the
// center are positive. MaskY is the transpose of MaskX.
var MaskY = [Size]hwy.Int16x8{
	{0, 0, -3, -3, -3, 0, 0, 0},
	{0, -2, -2, -2, -2, -2, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 0},
	{0, 2, 2, 2, 2, 2, 0, 0},
	{0, 0, 3, 3, 3, 0, 0, 0},
}
