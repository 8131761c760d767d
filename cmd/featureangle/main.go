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

// Command featureangle prints the orientation of feature points in an image.
//
// The image is decoded (PNG, JPEG, GIF, BMP or TIFF), converted to 8-bit
// gray, and each point's angle is computed over its 7x7 window:
//
//	featureangle -i photo.png -p '[[120,48],[300,211]]'
//	featureangle -i photo.png -g 16
//
// Every flag can also be set through its SCREAMING_SNAKE_CASE environment
// variable, e.g. INPUT=photo.png. Set HWY_NO_SIMD=1 (or pass -scalar) to
// force the scalar kernel.
package main

import (
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
)

const (
	INPUT  string = `input`
	POINTS string = `points`
	GRID   string = `grid`
	SCALAR string = `scalar`
)

func main() {
	app := cli.NewApp()
	app.Name = "featureangle"
	app.Usage = "Print the gradient orientation of feature points in an image"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     INPUT,
			Aliases:  []string{"i"},
			Usage:    "Input image (PNG, JPEG, GIF, BMP or TIFF)",
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(INPUT)},
		},
		&cli.StringFlag{
			Name:     POINTS,
			Aliases:  []string{"p"},
			Usage:    `Feature centers as a JSON array of [x,y] pairs. E.g.: [[10,12],[40,7]]`,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(POINTS)},
		},
		&cli.IntFlag{
			Name:     GRID,
			Aliases:  []string{"g"},
			Usage:    "When no points are given, sample every n-th pixel of the image interior",
			Value:    32,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(GRID)},
		},
		&cli.BoolFlag{
			Name:     SCALAR,
			Usage:    "Use the scalar gradient kernel regardless of the detected SIMD level",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(SCALAR)},
		},
	}

	app.Action = func(c *cli.Context) error {
		cfg := config{
			input:  c.String(INPUT),
			points: c.String(POINTS),
			grid:   c.Int(GRID),
			scalar: c.Bool(SCALAR),
		}
		return run(cfg, os.Stdout)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
