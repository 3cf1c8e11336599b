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

// CheckRepeatQC runs the four quality-control gates from spec §4.4, in
// order, on a candidate repeat array found in read. It returns
// RejectNone if the candidate survives all four gates, or the reason
// for the first gate it fails.
//
// The three similarity-adjacent constants in the original crass sources
// are easy to confuse (see spec §9, Open Questions b/c): the
// low-complexity gate always uses LowComplexityThreshold (0.75), the
// repeat/spacer similarity gate always uses SimilarityThreshold (0.82),
// and the abundant-k-mer gate always uses AbundantKmerThreshold (0.23).
// Nothing here reads the wrong constant for the wrong gate.
func CheckRepeatQC(cfg Config, read RawRead, positions RepeatArray) RejectReason {
	repeatLen := positions.FullLength()

	// Gate 1: length.
	if repeatLen < cfg.MinRepeatLength || repeatLen > cfg.MaxRepeatLength {
		return RejectLengthOutOfBounds
	}
	spacers := positions.Spacers(read.Bases)
	minSpa, maxSpa := -1, -1
	for _, sp := range spacers {
		l := len(sp)
		if l < cfg.MinSpacerLength || l > cfg.MaxSpacerLength {
			return RejectSpacerLengthOutOfBounds
		}
		if minSpa == -1 || l < minSpa {
			minSpa = l
		}
		if maxSpa == -1 || l > maxSpa {
			maxSpa = l
		}
	}
	if minSpa != -1 && maxSpa-minSpa > cfg.SpacerLengthDiff {
		return RejectSpacerLengthVariance
	}

	repeat := representativeRepeat(read, positions)

	// Gate 2: low complexity.
	if isLowComplexity(repeat, cfg.LowComplexityThreshold) {
		return RejectLowComplexity
	}

	// Gate 3: repeat/spacer similarity.
	for _, sp := range spacers {
		if similarityRatio(repeat, sp) > cfg.SimilarityThreshold {
			return RejectRepeatSpacerSimilarity
		}
	}

	// Gate 4: abundant k-mer.
	if hasAbundantKmer(repeat, cfg.KmerSize, cfg.AbundantKmerThreshold) {
		return RejectAbundantKmer
	}

	return RejectNone
}

// representativeRepeat returns the substring of the first full (§3,
// non-partial) interval, the same repeat instance RepeatQC and
// NodeManager reason about.
func representativeRepeat(read RawRead, positions RepeatArray) string {
	if iv, ok := positions.FirstFull(read.Len()); ok {
		return read.Bases[iv.Start:iv.End]
	}
	iv := positions[0]
	return read.Bases[iv.Start:iv.End]
}

// isLowComplexity reports whether any single base makes up more than
// threshold of repeat.
func isLowComplexity(repeat string, threshold float64) bool {
	for _, frac := range baseFraction(repeat) {
		if frac > threshold {
			return true
		}
	}
	return false
}

// hasAbundantKmer reports whether any k-mer within repeat occurs more
// often, as a fraction of the number of k-mer windows, than threshold.
func hasAbundantKmer(repeat string, k int, threshold float64) bool {
	if k <= 0 || k > len(repeat) {
		return false
	}
	numWindows := len(repeat) - k + 1
	counts := make(map[string]int, numWindows)
	for i := 0; i <= len(repeat)-k; i++ {
		counts[repeat[i:i+k]]++
	}
	for _, c := range counts {
		if float64(c)/float64(numWindows) > threshold {
			return true
		}
	}
	return false
}
