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

// Canonicalize orients rr so that its repeat string is lexicographically
// <= its reverse complement (spec §4.5). The comparison always uses the
// first full (non-partial) interval; for a single-interval ReadRecord
// whose one interval touches a read edge (the edge case in §4.5), there
// is no full interval to prefer, so the lone interval stands in for it.
// Both candidate orientations then expose a representative repeat
// string of identical length (reversing the read maps a left-edge
// partial onto a right-edge partial of the same size, and vice versa),
// so "choose the longer" reduces to the ordinary lexicographic
// comparison, with the palindrome tie-break below.
func Canonicalize(rr ReadRecord) ReadRecord {
	L := rr.Read.Len()
	iv, ok := rr.Positions.FirstFull(L)
	if !ok {
		iv = rr.Positions[0]
	}

	rep := rr.Read.Bases[iv.Start:iv.End]
	rc := revComp(rep)

	if rep <= rc {
		rr.WasLowLex = true
		return rr
	}
	return reverseComplementRecord(rr)
}

// reverseComplementRecord returns a new ReadRecord with the read's
// bases reverse-complemented and its intervals reversed in order, each
// individually mapped [s,e) -> [L-e, L-s), per spec §4.5.
func reverseComplementRecord(rr ReadRecord) ReadRecord {
	L := rr.Read.Len()
	newBases := revComp(rr.Read.Bases)

	newPositions := make(RepeatArray, len(rr.Positions))
	for i, iv := range rr.Positions {
		j := len(rr.Positions) - 1 - i
		newPositions[j] = Interval{Start: L - iv.End, End: L - iv.Start}
	}

	return ReadRecord{
		Read:      RawRead{Name: rr.Read.Name, Bases: newBases},
		Positions: newPositions,
		WasLowLex: false,
	}
}
