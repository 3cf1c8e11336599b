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

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ACGT", "ACGT", 0},
		{"", "ACGT", 4},
		{"ACGT", "", 4},
		{"kitten", "sitting", 3},
		{"ACGT", "ACGA", 1},
		{"ACGT", "AGT", 1},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := similarityRatio("", ""); got != 1 {
		t.Errorf("similarityRatio(\"\", \"\") = %v, want 1", got)
	}
	if got := similarityRatio("ACGT", "ACGT"); got != 1 {
		t.Errorf("similarityRatio identical = %v, want 1", got)
	}
	// One substitution out of 23 bases: ratio = 1 - 1/23.
	a := "ACGTACGTACGTACGTACGTACG"
	b := "ACGTACGTACGTACGTACGTACT"
	want := 1 - 1.0/23.0
	if got := similarityRatio(a, b); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("similarityRatio = %v, want %v", got, want)
	}
}
