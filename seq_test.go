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

func TestNormalizeBases(t *testing.T) {
	cases := map[string]string{
		"acgt": "ACGT",
		"ACGT": "ACGT",
		"ACGN": "ACGN",
		"ACGR": "ACGN", // ambiguity code coerced to N
		"ac-t": "ACNT",
	}
	for in, want := range cases {
		if got := NormalizeBases(in); got != want {
			t.Errorf("NormalizeBases(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRevComp(t *testing.T) {
	cases := map[string]string{
		"ACGT": "ACGT", // palindrome
		"AACC": "GGTT",
		"AAAA": "TTTT",
		"ACGN": "NCGT",
	}
	for in, want := range cases {
		if got := revComp(in); got != want {
			t.Errorf("revComp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBaseFraction(t *testing.T) {
	f := baseFraction("AAAC")
	if f['A'] != 0.75 {
		t.Errorf("fraction of A = %v, want 0.75", f['A'])
	}
	if f['C'] != 0.25 {
		t.Errorf("fraction of C = %v, want 0.25", f['C'])
	}
	if baseFraction("") != nil {
		t.Errorf("baseFraction(\"\") should be nil")
	}
}
