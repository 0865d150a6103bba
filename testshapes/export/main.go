// Command export renders every test shape to depth and shaded-normal
// PNG images for visual inspection.
// Run from the solid module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/solid"
	"seehuhn.de/go/solid/testshapes"
)

const outDir = "testdata/rendered"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testshapes.All)) {
		for _, tc := range testshapes.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testshapes.TestShape, name string) error {
	r, err := solid.NewRegion(-1, 1, -1, 1, -1, 1, tc.N, tc.N, tc.N)
	if err != nil {
		return err
	}
	v, err := solid.NewView(tc.Field, tc.ViewMatrix())
	if err != nil {
		return err
	}

	depth, err := solid.Render(v, r)
	if err != nil {
		return err
	}
	shaded, err := solid.Shade(v, r, depth)
	if err != nil {
		return err
	}

	if err := writePNG(filepath.Join(outDir, name+"_depth.png"), depth.Gray16()); err != nil {
		return err
	}
	return writePNG(filepath.Join(outDir, name+"_normal.png"), shaded.RGBA())
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
