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

// NoMatch is returned as an offset by findFirst/findApprox when the
// pattern is not present (the NONE outcome in spec §4.1).
const NoMatch = -1

// baseCode packs a normalized base into a 2-bit code, or 4 for N/other.
// Packing lets the approximate scan compare candidate windows as small
// integer arrays instead of raw bytes, and keeps the mismatch rule for N
// ("never equal to anything, including another N") in one place.
func baseCode(b byte) byte {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return 4
	}
}

func codeString(s string) []byte {
	codes := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		codes[i] = baseCode(s[i])
	}
	return codes
}

// findFirst performs an exact, case-sensitive search for pattern in text
// using the Boyer-Moore-Horspool bad-character rule, returning the
// leftmost match offset or NoMatch. pattern must be non-empty.
func findFirst(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return NoMatch
	}
	if m == 1 {
		idx := indexByte(text, pattern[0])
		return idx
	}

	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}

	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += shift[text[i+m-1]]
	}
	return NoMatch
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return NoMatch
}

// findSeed locates pattern in text via the exact matcher when
// maxMismatches is 0, or the approximate matcher otherwise, wiring
// Config.MaxMismatches into the seed/extension search (spec §4.1's
// PatternMatcher contract covers both; §6 names MaxMismatches as the
// knob selecting between them for pass-1 extension).
func findSeed(text, pattern string, maxMismatches int) int {
	if maxMismatches <= 0 {
		return findFirst(text, pattern)
	}
	offset, _ := findApprox(text, pattern, maxMismatches)
	return offset
}

// findApprox returns the leftmost offset in text where pattern aligns
// with Hamming distance <= maxMismatches, together with the exact
// mismatch count at that offset, or NoMatch if no such offset exists.
// Bases are compared via their packed codes (§ baseCode); an 'N' on
// either side never counts as a match, including N against N, matching
// the read-coercion contract in spec §6.
func findApprox(text, pattern string, maxMismatches int) (offset, mismatches int) {
	n, m := len(text), len(pattern)
	if m == 0 || m > n || maxMismatches < 0 {
		return NoMatch, 0
	}

	patCodes := codeString(pattern)
	textCodes := codeString(text)

	for off := 0; off <= n-m; off++ {
		mm := 0
		window := textCodes[off : off+m]
		for i := 0; i < m; i++ {
			pc := patCodes[i]
			tc := window[i]
			if pc == 4 || tc == 4 || pc != tc {
				mm++
				if mm > maxMismatches {
					break
				}
			}
		}
		if mm <= maxMismatches {
			return off, mm
		}
	}
	return NoMatch, 0
}
