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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/ajroetker/go-featureangle/hwy"
	"github.com/ajroetker/go-featureangle/hwy/contrib/image"
	"github.com/ajroetker/go-featureangle/hwy/contrib/math"
)

type gradientFunc func(pix []uint8, x, y, stride int) (xSum, ySum int16)

type config struct {
	input  string
	points string
	grid   int
	scalar bool
}

var errNoPoints = errors.New("no feature point fits inside the image")

func run(cfg config, w io.Writer) error {
	gray, err := loadGray(cfg.input)
	if err != nil {
		return err
	}

	var pts []stdimage.Point
	if cfg.points != "" {
		pts, err = parsePoints(cfg.points)
		if err != nil {
			return err
		}
	} else {
		pts = gridPoints(gray.Bounds(), cfg.grid)
	}

	grad, kernel := image.Gradient, hwy.CurrentName()
	if cfg.scalar {
		grad, kernel = image.BaseGradientScalar, "scalar (forced)"
	}
	log.Printf("%s: %v, kernel %s", cfg.input, gray.Bounds(), kernel)

	return writeAngles(w, gray, pts, grad)
}

// loadGray decodes path and converts it to 8-bit gray.
func loadGray(path string) (*stdimage.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input image: %w", err)
	}
	defer f.Close()

	src, format, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if gray, ok := src.(*stdimage.Gray); ok {
		return gray, nil
	}

	log.Printf("converting %s image to gray", format)
	gray := stdimage.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
	return gray, nil
}

// parsePoints reads a JSON array of [x,y] pairs.
func parsePoints(s string) ([]stdimage.Point, error) {
	var pairs [][2]int
	if err := json.Unmarshal([]byte(s), &pairs); err != nil {
		return nil, fmt.Errorf("error parsing points %q: %w", s, err)
	}
	pts := make([]stdimage.Point, len(pairs))
	for i, xy := range pairs {
		pts[i] = stdimage.Pt(xy[0], xy[1])
	}
	return pts, nil
}

// gridPoints returns every step-th interior point of r whose window fits.
func gridPoints(r stdimage.Rectangle, step int) []stdimage.Point {
	if step <= 0 {
		step = 1
	}
	var pts []stdimage.Point
	for y := r.Min.Y + image.Radius; y < r.Max.Y-image.Radius; y += step {
		for x := r.Min.X + image.Radius; x < r.Max.X-image.Radius; x += step {
			pts = append(pts, stdimage.Pt(x, y))
		}
	}
	return pts
}

// writeAngles prints one "x y xSum ySum angle" line per point, running grad
// once per point. Points whose window does not fit are reported and skipped.
func writeAngles(w io.Writer, gray *stdimage.Gray, pts []stdimage.Point, grad gradientFunc) error {
	written := 0
	for _, p := range pts {
		if !image.WindowInBounds(gray.Bounds(), p) {
			log.Printf("skipping %v: 7x7 window exceeds %v", p, gray.Bounds())
			continue
		}
		xSum, ySum := grad(gray.Pix, p.X-gray.Rect.Min.X, p.Y-gray.Rect.Min.Y, gray.Stride)
		angle := math.FastAtan2(float32(ySum), float32(xSum))
		if _, err := fmt.Fprintf(w, "%d %d %d %d %.6f\n", p.X, p.Y, xSum, ySum, angle); err != nil {
			return err
		}
		written++
	}
	if written == 0 {
		return errNoPoints
	}
	return nil
}
