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

func TestStringPoolInternReusesTokens(t *testing.T) {
	p := NewStringPool()
	a := p.Intern("ACGT")
	b := p.Intern("TTTT")
	c := p.Intern("ACGT")

	if a != c {
		t.Errorf("Intern(%q) returned different tokens on repeat calls: %d != %d", "ACGT", a, c)
	}
	if a == b {
		t.Errorf("distinct strings got the same token")
	}
	if a == 0 || b == 0 {
		t.Errorf("token 0 is reserved for absent, got a=%d b=%d", a, b)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestStringPoolLookup(t *testing.T) {
	p := NewStringPool()
	p.Intern("ACGT")

	if _, ok := p.Lookup("TTTT"); ok {
		t.Errorf("Lookup found a string that was never interned")
	}
	tok, ok := p.Lookup("ACGT")
	if !ok {
		t.Fatalf("Lookup did not find an interned string")
	}
	if p.String(tok) != "ACGT" {
		t.Errorf("String(%d) = %q, want %q", tok, p.String(tok), "ACGT")
	}
}

func TestStringPoolStringPanicsOnUnknownToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an unknown token")
		}
	}()
	p := NewStringPool()
	p.String(Token(99))
}
