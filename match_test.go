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

func TestFindFirst(t *testing.T) {
	cases := []struct {
		text, pattern string
		want          int
	}{
		{"AAACGTGGGGACGT", "ACGT", 2},
		{"AAAA", "TTTT", NoMatch},
		{"AAAA", "A", 0},
		{"AAAA", "AAAAA", NoMatch},
		{"ACGTACGT", "ACGT", 0},
	}
	for _, c := range cases {
		if got := findFirst(c.text, c.pattern); got != c.want {
			t.Errorf("findFirst(%q, %q) = %d, want %d", c.text, c.pattern, got, c.want)
		}
	}
}

func TestFindApproxExact(t *testing.T) {
	off, mm := findApprox("AAACGTGGGG", "ACGT", 0)
	if off != 2 || mm != 0 {
		t.Errorf("findApprox exact = (%d, %d), want (2, 0)", off, mm)
	}
}

func TestFindApproxWithMismatch(t *testing.T) {
	// "ACGA" at offset 0 differs from "ACGT" by one base.
	off, mm := findApprox("ACGAGGGG", "ACGT", 1)
	if off != 0 || mm != 1 {
		t.Errorf("findApprox with 1 mismatch allowed = (%d, %d), want (0, 1)", off, mm)
	}

	if off, _ := findApprox("ACGAGGGG", "ACGT", 0); off != NoMatch {
		t.Errorf("findApprox with 0 mismatches allowed should reject a 1-mismatch window, got offset %d", off)
	}
}

func TestFindApproxNeverMatchesN(t *testing.T) {
	// An N in the text must never count as a match, even against an N
	// in the pattern.
	if off, _ := findApprox("NNNNNNNN", "NNNN", 0); off != NoMatch {
		t.Errorf("findApprox matched N against N at offset %d, want NoMatch", off)
	}
}

func TestFindSeedExactWhenZeroMismatches(t *testing.T) {
	if got := findSeed("AAACGTGGGG", "ACGT", 0); got != 2 {
		t.Errorf("findSeed(maxMismatches=0) = %d, want 2", got)
	}
	if got := findSeed("AAAA", "TTTT", 0); got != NoMatch {
		t.Errorf("findSeed(maxMismatches=0) on non-match = %d, want NoMatch", got)
	}
}

func TestFindSeedApproximateWhenMismatchesAllowed(t *testing.T) {
	// "ACGA" at offset 0 differs from pattern "ACGT" by one base; only
	// the approximate path (maxMismatches > 0) can find it.
	if got := findSeed("ACGAGGGG", "ACGT", 0); got != NoMatch {
		t.Errorf("findSeed(maxMismatches=0) = %d, want NoMatch", got)
	}
	if got := findSeed("ACGAGGGG", "ACGT", 1); got != 0 {
		t.Errorf("findSeed(maxMismatches=1) = %d, want 0", got)
	}
}
