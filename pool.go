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

// Token is a dense integer naming an interned string. Token 0 means
// "absent" and is never handed out by Intern.
type Token uint32

// StringPool is a bidirectional string<->Token mapping. It is
// process-wide for one pipeline run and append-only: nothing is ever
// removed from it, and once built it is safe to read concurrently
// (spec §5, "after build, it is read-only").
type StringPool struct {
	byString map[string]Token
	byToken  []string // byToken[0] is unused; tokens are 1-based
}

// NewStringPool returns an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{
		byString: make(map[string]Token),
		byToken:  []string{""},
	}
}

// Intern returns the token for s, creating one if s has not been seen
// before.
func (p *StringPool) Intern(s string) Token {
	if t, ok := p.byString[s]; ok {
		return t
	}
	t := Token(len(p.byToken))
	p.byToken = append(p.byToken, s)
	p.byString[s] = t
	return t
}

// Lookup returns the token for s without creating one; ok is false if s
// has never been interned.
func (p *StringPool) Lookup(s string) (t Token, ok bool) {
	t, ok = p.byString[s]
	return
}

// String returns the string behind t. It panics if t is 0 or was never
// issued by this pool, since that indicates a programming error in the
// caller (every token observed by crass code originates from Intern).
func (p *StringPool) String(t Token) string {
	if t == 0 || int(t) >= len(p.byToken) {
		panic("crass: StringPool.String: unknown token")
	}
	return p.byToken[t]
}

// Len reports the number of distinct strings interned so far.
func (p *StringPool) Len() int {
	return len(p.byToken) - 1
}
