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

import "testing"

func TestRainbowColorDegenerateRange(t *testing.T) {
	low := rainbowColor(5, 10, 10)
	high := rainbowColor(10, 10, 10)
	if low != high {
		t.Errorf("a degenerate coverage range should colour everything alike, got %v != %v", low, high)
	}
}

func TestRainbowColorMonotone(t *testing.T) {
	// B-R is non-decreasing in hue only up through the blue sector
	// (hue <= 2/3 turns); past that the ramp curves back toward
	// magenta/violet and B-R turns back down, so this proxy is only
	// valid up to coverage 8 of 10 (hue = 0.6 turns) on this 0.75-turn
	// ramp. See rainbowHueHigh.
	var prevProxy = -256.0 // below the lowest possible B-R (-255)
	for cov := 0; cov <= 8; cov++ {
		c := rainbowColor(cov, 0, 10)
		proxy := float64(int(c.B)) - float64(int(c.R))
		if proxy < prevProxy-1e-9 {
			t.Errorf("coverage %d: ramp proxy decreased (%v -> %v), colouring should be monotone", cov, prevProxy, proxy)
		}
		prevProxy = proxy
	}
}

func TestRainbowColorClampsOutOfRangeCoverage(t *testing.T) {
	belowRange := rainbowColor(-5, 0, 10)
	atMin := rainbowColor(0, 0, 10)
	if belowRange != atMin {
		t.Errorf("coverage below minCoverage should clamp to the low end")
	}

	aboveRange := rainbowColor(50, 0, 10)
	atMax := rainbowColor(10, 0, 10)
	if aboveRange != atMax {
		t.Errorf("coverage above maxCoverage should clamp to the high end")
	}
}
