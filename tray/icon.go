package tray

import (
	"bytes"
	"image"
	"image/png"
	"math"
)

// Icon kinds accepted by Controller.SetIcon.
const (
	IconDefault = "default"
	IconActive  = "active"
)

const iconSize = 22

// DefaultIcons returns the generated template icons keyed by kind.
func DefaultIcons() map[string][]byte {
	return map[string][]byte{
		IconDefault: encodeIcon(createIconRGBA(false)),
		IconActive:  encodeIcon(createIconRGBA(true)),
	}
}

// createIconRGBA draws a diagonal blade with a guard, black on transparent so
// the menu bar can template it. The active variant adds a dot in the top-left corner.
func createIconRGBA(active bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			alpha := 0.0

			// Blade: segment from (5,17) to (19,3), half-width 1.4.
			d := segmentDistance(fx, fy, 5, 17, 19, 3)
			if d <= 1.4 {
				alpha = 1.0
			} else if d <= 2.0 {
				alpha = (2.0 - d) / 0.6
			}

			// Guard: short segment across the blade.
			g := segmentDistance(fx, fy, 4, 14, 8, 18)
			if g <= 1.0 {
				alpha = 1.0
			} else if g <= 1.6 {
				alpha = math.Max(alpha, (1.6-g)/0.6)
			}

			// Grip.
			h := segmentDistance(fx, fy, 2, 20, 5, 17)
			if h <= 1.0 {
				alpha = 1.0
			}

			if active {
				dd := math.Hypot(fx-4.5, fy-4.5)
				if dd <= 2.5 {
					alpha = 1.0
				} else if dd <= 3.1 {
					alpha = math.Max(alpha, (3.1-dd)/0.6)
				}
			}

			if alpha > 0.0 {
				i := img.PixOffset(x, y)
				img.Pix[i+3] = uint8(math.Min(alpha, 1.0) * 255.0)
			}
		}
	}
	return img
}

func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

func encodeIcon(img image.Image) []byte {
	var buf bytes.Buffer
	// encoding an in-memory NRGBA cannot fail
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
