// Copyright © 2021 The crass-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package crass

import "gonum.org/v1/plot/palette"

// rainbowHueLow and rainbowHueHigh bound the hue ramp used to colour
// nodes by coverage: red at the low end, violet at the high end (spec
// §4.8). Hue is expressed in turns (0-1), as gonum/plot/palette.HSVA
// expects, following the same HSVA-based colouring approach as
// biogo-examples/paint (which builds a rainbow over palette.HSVA).
const (
	rainbowHueLow  = 0.0
	rainbowHueHigh = 0.75
)

// RGB is an 8-bit-per-channel colour triple, the "colorRGB" half of a
// node record in the output graph description (spec §6).
type RGB struct {
	R, G, B uint8
}

// rainbowColor maps coverage linearly onto the red-to-violet ramp,
// given the attached-node coverage range [minCoverage, maxCoverage].
// The map is monotone non-decreasing in coverage, per the coloring
// contract in spec §4.8; a degenerate range (minCoverage == maxCoverage)
// colours everything at the low end of the ramp.
func rainbowColor(coverage, minCoverage, maxCoverage int) RGB {
	frac := 0.0
	if maxCoverage > minCoverage {
		frac = float64(coverage-minCoverage) / float64(maxCoverage-minCoverage)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	hue := rainbowHueLow + frac*(rainbowHueHigh-rainbowHueLow)
	hsva := palette.HSVA{H: hue, S: 1, V: 1, A: 1}
	r, g, b, _ := hsva.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
