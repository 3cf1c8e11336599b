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

// MultiPatternMatcher finds the leftmost occurrence of any of a fixed
// set of patterns in a text, using the Wu-Manber shift/hash scheme:
// scan the text in windows the size of the shortest pattern, compute a
// small block at the end of each window, and use a precomputed shift
// table to skip ahead whenever that block cannot end any pattern. Only
// when the shift is zero do we fall back to direct verification against
// the (few) patterns sharing that block. Construction is
// O(sum of pattern lengths * block alphabet); search is sublinear in
// the sum of pattern lengths for the common case of many short patterns
// sharing few blocks (spec §4.2).
type MultiPatternMatcher struct {
	patterns  []string
	minLen    int
	blockSize int
	shift     map[uint16]int
	hash      map[uint16][]int
}

// NewMultiPatternMatcher builds a matcher for patterns, which must all
// be distinct and non-empty. Construction is one-shot; the returned
// matcher is then queried repeatedly via SearchFirst.
func NewMultiPatternMatcher(patterns []string) (*MultiPatternMatcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	minLen := len(patterns[0])
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, ErrNoPatterns
		}
		if len(p) < minLen {
			minLen = len(p)
		}
	}

	blockSize := 2
	if minLen < blockSize {
		blockSize = minLen
	}

	m := &MultiPatternMatcher{
		patterns:  append([]string(nil), patterns...),
		minLen:    minLen,
		blockSize: blockSize,
		shift:     make(map[uint16]int),
		hash:      make(map[uint16][]int),
	}
	m.build()
	return m, nil
}

func packBlock(b []byte) uint16 {
	if len(b) == 1 {
		return uint16(b[0])
	}
	return uint16(b[0])<<8 | uint16(b[1])
}

func (m *MultiPatternMatcher) build() {
	for idx, p := range m.patterns {
		// Only the first minLen characters of each pattern participate
		// in the shift/hash computation: the scan window is exactly
		// minLen wide, so nothing past it can influence skip distance.
		window := p
		if len(window) > m.minLen {
			window = window[:m.minLen]
		}
		lastQ := m.minLen - m.blockSize
		for q := 0; q <= lastQ; q++ {
			block := packBlock([]byte(window[q : q+m.blockSize]))
			candidate := m.minLen - m.blockSize - q
			if q == lastQ {
				// Block ends exactly at the window boundary: this
				// pattern is a real candidate whenever this block is
				// seen, so it needs verification rather than a skip.
				m.shift[block] = 0
				m.hash[block] = append(m.hash[block], idx)
				continue
			}
			if existing, ok := m.shift[block]; !ok || candidate < existing {
				m.shift[block] = candidate
			}
		}
	}
}

func (m *MultiPatternMatcher) shiftFor(block uint16) int {
	if s, ok := m.shift[block]; ok {
		return s
	}
	return m.minLen - m.blockSize + 1
}

// SearchFirst reports the leftmost occurrence, across all patterns, of
// any pattern in text: the index into the original patterns slice and
// the offset at which it starts. ok is false if no pattern occurs.
func (m *MultiPatternMatcher) SearchFirst(text string) (patternIndex, offset int, ok bool) {
	n := len(text)
	if n < m.minLen {
		return 0, 0, false
	}

	i := 0
	for i+m.minLen <= n {
		windowEnd := i + m.minLen - 1
		block := packBlock([]byte(text[windowEnd-m.blockSize+1 : windowEnd+1]))
		s := m.shiftFor(block)
		if s > 0 {
			i += s
			continue
		}

		for _, idx := range m.hash[block] {
			p := m.patterns[idx]
			if i+len(p) <= n && text[i:i+len(p)] == p {
				return idx, i, true
			}
		}
		i++
	}
	return 0, 0, false
}

// Patterns returns the pattern set the matcher was built with, in
// their original order.
func (m *MultiPatternMatcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}
