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

// SingletonFinder is the pass-2 collaborator (spec §4.6): it holds the
// canonical repeats discovered by pass 1 as a multi-pattern set, and
// assigns reads that contain exactly one occurrence of one of those
// repeats (too short for SingleReadFinder's chain logic to have found
// it in pass 1).
type SingletonFinder struct {
	matcher         *MultiPatternMatcher
	canonicalRepeat []string
}

// NewSingletonFinder builds the pass-2 matcher from the canonical
// repeat strings produced by pass 1. canonicalRepeats must be
// non-empty and distinct.
func NewSingletonFinder(canonicalRepeats []string) (*SingletonFinder, error) {
	m, err := NewMultiPatternMatcher(canonicalRepeats)
	if err != nil {
		return nil, err
	}
	return &SingletonFinder{
		matcher:         m,
		canonicalRepeat: append([]string(nil), canonicalRepeats...),
	}, nil
}

// Find reports the first occurrence, at any offset, of any pass-1
// canonical repeat within read. On a hit it returns a ReadRecord with a
// single interval covering exactly the matched pattern, and the
// canonical repeat it was assigned to; it never looks for a second
// occurrence in the same read, since pass 1 would already have found a
// read containing two or more.
func (s *SingletonFinder) Find(read RawRead) (rr ReadRecord, canonicalRepeat string, ok bool) {
	idx, offset, found := s.matcher.SearchFirst(read.Bases)
	if !found {
		return ReadRecord{}, "", false
	}
	pattern := s.canonicalRepeat[idx]
	positions := RepeatArray{{Start: offset, End: offset + len(pattern)}}
	// The matched pattern is itself one of pass 1's canonical repeats, so
	// it is already in its lexicographically-lowest orientation; no
	// separate Canonicalize call is needed (spec §4.5 invariant holds by
	// construction).
	rr = ReadRecord{Read: read, Positions: positions, WasLowLex: true}
	return rr, pattern, true
}
