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

// RawRead is a single sequencing read, immutable once loaded. Bases are
// always upper-cased and restricted to {A,C,G,T,N} by NormalizeBases
// before a RawRead is constructed (spec §3).
type RawRead struct {
	Name  string
	Bases string
}

// NewRawRead normalizes bases and returns the RawRead, or a
// *MalformedReadError if the read is empty (spec §7).
func NewRawRead(name, bases string) (RawRead, error) {
	if len(bases) == 0 {
		return RawRead{}, &MalformedReadError{ReadName: name, Reason: "empty sequence"}
	}
	return RawRead{Name: name, Bases: NormalizeBases(bases)}, nil
}

// Len returns the read length in bases.
func (r RawRead) Len() int {
	return len(r.Bases)
}

// Interval is a half-open range [Start, End) into a RawRead's bases.
type Interval struct {
	Start, End int
}

// Len returns End - Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// RepeatArray is an ordered, non-overlapping sequence of repeat
// occurrences within one read (spec §3). Invariants, enforced by
// whoever constructs a RepeatArray (SingleReadFinder, SingletonFinder,
// Canonicalizer):
//
//   - intervals strictly increase in Start;
//   - all intervals have equal length, except that the first and/or
//     last interval may be shorter because it is truncated (partial) at
//     a read edge;
//   - the gap between consecutive intervals (the spacer) has a length
//     that RepeatQC has accepted.
type RepeatArray []Interval

// FullLength returns the length shared by every non-partial interval,
// i.e. the interior repeat length, or 0 if there are no intervals.
func (ra RepeatArray) FullLength() int {
	for _, iv := range ra {
		if !ra.isPartial(iv) {
			return iv.Len()
		}
	}
	if len(ra) > 0 {
		return ra[0].Len()
	}
	return 0
}

func (ra RepeatArray) isPartial(iv Interval) bool {
	// An interval is partial if it is shorter than the modal (interior)
	// length; callers with read-boundary context use isPartialAt
	// instead, which additionally checks read edges (spec §3, §4.5).
	for _, other := range ra {
		if other.Len() > iv.Len() {
			return true
		}
	}
	return false
}

// isPartialAt reports whether the interval at index i is partial: it
// touches the read's left edge (Start==0) or right edge (End==readLen),
// AND is not the only, full-length interval present.
func (ra RepeatArray) isPartialAt(i int, readLen int) bool {
	iv := ra[i]
	atLeftEdge := iv.Start == 0
	atRightEdge := iv.End == readLen
	if !atLeftEdge && !atRightEdge {
		return false
	}
	// An interior interval is never partial, by construction; only the
	// first or last may be.
	if i != 0 && i != len(ra)-1 {
		return false
	}
	full := ra.FullLength()
	return iv.Len() < full
}

// FirstFull returns the first non-partial interval and true, or the
// zero Interval and false if every interval is partial. Since an
// interval of the longest length in the array is never partial
// (isPartialAt), a lone interval, even one at a read edge, is returned
// as full, and false is returned only for an empty array.
func (ra RepeatArray) FirstFull(readLen int) (Interval, bool) {
	for i, iv := range ra {
		if !ra.isPartialAt(i, readLen) {
			return iv, true
		}
	}
	return Interval{}, false
}

// Spacers returns the gap substrings between consecutive intervals.
func (ra RepeatArray) Spacers(bases string) []string {
	if len(ra) < 2 {
		return nil
	}
	out := make([]string, 0, len(ra)-1)
	for i := 1; i < len(ra); i++ {
		out = append(out, bases[ra[i-1].End:ra[i].Start])
	}
	return out
}

// ReadRecord is a read together with the repeat occurrences discovered
// in it (spec §3). Created by SingleReadFinder or SingletonFinder;
// WasLowLex is set by Canonicalizer; NodeManager treats it read-only.
type ReadRecord struct {
	Read      RawRead
	Positions RepeatArray
	WasLowLex bool
}

// RepeatStrings returns the substring for every interval in order.
func (rr ReadRecord) RepeatStrings() []string {
	out := make([]string, len(rr.Positions))
	for i, iv := range rr.Positions {
		out[i] = rr.Read.Bases[iv.Start:iv.End]
	}
	return out
}

// SpacerStrings returns the substring of every gap between consecutive
// intervals, in order.
func (rr ReadRecord) SpacerStrings() []string {
	return rr.Positions.Spacers(rr.Read.Bases)
}
