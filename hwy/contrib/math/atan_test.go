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

import (
	stdmath "math"
	"testing"
)

func TestFastAtan2Quadrants(t *testing.T) {
	tests := []struct {
		name string
		y, x float32
		want float64
	}{
		{"atan2(1, 1)", 1, 1, stdmath.Pi / 4},
		{"atan2(1, -1)", 1, -1, 3 * stdmath.Pi / 4},
		{"atan2(-1, -1)", -1, -1, -3 * stdmath.Pi / 4},
		{"atan2(-1, 1)", -1, 1, -stdmath.Pi / 4},
		{"atan2(1, 0)", 1, 0, stdmath.Pi / 2},
		{"atan2(-1, 0)", -1, 0, -stdmath.Pi / 2},
		{"atan2(0, -1)", 0, -1, stdmath.Pi},
		{"atan2(3, 4)", 3, 4, stdmath.Atan2(3, 4)},
		{"atan2(-4, 3)", -4, 3, stdmath.Atan2(-4, 3)},
		{"atan2(5, -12)", 5, -12, stdmath.Atan2(5, -12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FastAtan2(tt.y, tt.x)
			if stdmath.Abs(float64(got)-tt.want) > FastAtan2MaxError {
				t.Errorf("FastAtan2(%v, %v) = %v, want %v", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestFastAtan2Exact(t *testing.T) {
	if got := FastAtan2[float32](0, 1); got != 0 {
		t.Errorf("FastAtan2(0, 1) = %v, want exactly 0", got)
	}
	if got := FastAtan2[float32](0, 0); got != 0 {
		t.Errorf("FastAtan2(0, 0) = %v, want exactly 0", got)
	}
	if got := FastAtan2[float64](0, 0); got != 0 {
		t.Errorf("FastAtan2[float64](0, 0) = %v, want exactly 0", got)
	}
	if got, want := FastAtan2[float32](1, 0), float32(stdmath.Pi/2); got != want {
		t.Errorf("FastAtan2(1, 0) = %v, want %v", got, want)
	}
}

func TestFastAtan2Accuracy(t *testing.T) {
	const steps = 100000
	var maxErr float64
	for i := 0; i <= steps; i++ {
		theta := -stdmath.Pi + 2*stdmath.Pi*float64(i)/steps
		for _, r := range []float64{1e-3, 1, 255, 13260} {
			y := float32(r * stdmath.Sin(theta))
			x := float32(r * stdmath.Cos(theta))
			got := float64(FastAtan2(y, x))
			want := stdmath.Atan2(float64(y), float64(x))
			diff := stdmath.Abs(got - want)
			// Both sides of the negative x axis describe the same direction.
			if diff > stdmath.Pi {
				diff = 2*stdmath.Pi - diff
			}
			maxErr = max(maxErr, diff)
		}
	}
	if maxErr > FastAtan2MaxError {
		t.Errorf("max error %v exceeds %v", maxErr, FastAtan2MaxError)
	}
}

func TestFastAtan2Float64(t *testing.T) {
	for _, tc := range [][2]float64{{1, 2}, {-2, 1}, {7, -3}, {-0.5, -0.25}} {
		y, x := tc[0], tc[1]
		got := FastAtan2(y, x)
		want := stdmath.Atan2(y, x)
		if stdmath.Abs(got-want) > FastAtan2MaxError {
			t.Errorf("FastAtan2(%v, %v) = %v, want %v", y, x, got, want)
		}
	}
}

func TestFastAtan2OddInY(t *testing.T) {
	ys := []float32{1e-6, 0.25, 1, 3, 17.5, 255, 13260}
	xs := []float32{0, 1e-6, 0.25, 1, 3, 17.5, 255, 13260, -1, -100}
	for _, y := range ys {
		for _, x := range xs {
			pos := FastAtan2(y, x)
			neg := FastAtan2(-y, x)
			if neg != -pos {
				t.Errorf("FastAtan2(-%v, %v) = %v, want %v", y, x, neg, -pos)
			}
		}
	}
}

func TestFastAtan2Range(t *testing.T) {
	const pi32 = float32(stdmath.Pi)
	values := []float32{0, 0.5, 1, 3, 100}
	for _, ay := range values {
		for _, ax := range values {
			for _, sy := range []float32{1, -1} {
				for _, sx := range []float32{1, -1} {
					y, x := sy*ay, sx*ax
					got := FastAtan2(y, x)
					if stdmath.IsNaN(float64(got)) || got <= -pi32 || got > pi32 {
						t.Errorf("FastAtan2(%v, %v) = %v, outside (-π, π]", y, x, got)
					}
				}
			}
		}
	}
}

func TestFastAtan2SmallMagnitudes(t *testing.T) {
	check := func(t *testing.T, got, want float64) {
		t.Helper()
		diff := stdmath.Abs(got - want)
		// y may round to -0 next to the negative x axis.
		if diff > stdmath.Pi {
			diff = 2*stdmath.Pi - diff
		}
		if diff > FastAtan2MaxError {
			t.Errorf("got %v, want %v (error %v)", got, want, diff)
		}
	}
	t.Run("float32", func(t *testing.T) {
		for _, r := range []float64{0x1p-100, 0x1p-80, 1e-20} {
			for i := 0; i < 360; i++ {
				theta := -stdmath.Pi + 2*stdmath.Pi*float64(i)/360
				y := float32(r * stdmath.Sin(theta))
				x := float32(r * stdmath.Cos(theta))
				check(t, float64(FastAtan2(y, x)), stdmath.Atan2(float64(y), float64(x)))
			}
		}
	})
	t.Run("float64", func(t *testing.T) {
		for _, r := range []float64{0x1p-996, 1e-250} {
			for i := 0; i < 360; i++ {
				theta := -stdmath.Pi + 2*stdmath.Pi*float64(i)/360
				y, x := r*stdmath.Sin(theta), r*stdmath.Cos(theta)
				check(t, FastAtan2(y, x), stdmath.Atan2(y, x))
			}
		}
	})
}

func TestFastAtan2Subnormal(t *testing.T) {
	// The ε guard is larger than the inputs, so the ratio collapses.
	got := FastAtan2[float32](1e-40, 1e-40)
	if !almostEqual(got, 0.00843, 1e-4) {
		t.Errorf("FastAtan2(1e-40, 1e-40) = %v, want about 0.00843", got)
	}
	if diff := stdmath.Pi/4 - float64(got); diff <= FastAtan2MaxError {
		t.Errorf("subnormal error %v unexpectedly within FastAtan2MaxError", diff)
	}
}

func TestFastAtan2NegativePi(t *testing.T) {
	const pi32 = float32(stdmath.Pi)
	tests := []struct {
		name string
		y, x float32
	}{
		{"underflow", -1e-30, -1e10},
		{"rounds", -1, -1e8},
		{"smallest", -0x1p-149, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FastAtan2(tc.y, tc.x); got != -pi32 {
				t.Errorf("FastAtan2(%v, %v) = %v, want %v", tc.y, tc.x, got, -pi32)
			}
			if want := float32(stdmath.Atan2(float64(tc.y), float64(tc.x))); want != -pi32 {
				t.Errorf("float32(math.Atan2(%v, %v)) = %v, want %v", tc.y, tc.x, want, -pi32)
			}
		})
	}
	if got := FastAtan2[float64](-1e-300, -1); got != -stdmath.Pi {
		t.Errorf("FastAtan2[float64](-1e-300, -1) = %v, want %v", got, -stdmath.Pi)
	}
	// Negative zero keeps the +π side.
	if got := FastAtan2(float32(stdmath.Copysign(0, -1)), -1); got != pi32 {
		t.Errorf("FastAtan2(-0, -1) = %v, want %v", got, pi32)
	}
}

func almostEqual(a, b, tol float32) bool {
	return stdmath.Abs(float64(a-b)) < float64(tol)
}

func BenchmarkFastAtan2(b *testing.B) {
	ys := []float32{1, -3, 120, -6630, 0, 42}
	xs := []float32{2, 5, -7, 6630, -1, 0}
	var sink float32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		j := i % len(ys)
		sink += FastAtan2(ys[j], xs[j])
	}
	_ = sink
}

func BenchmarkStdAtan2(b *testing.B) {
	ys := []float64{1, -3, 120, -6630, 0, 42}
	xs := []float64{2, 5, -7, 6630, -1, 0}
	var sink float64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		j := i % len(ys)
		sink += stdmath.Atan2(ys[j], xs[j])
	}
	_ = sink
}
