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

// SingleReadFinder discovers tandem direct repeats within one read:
// windowed seeding, chain extension, repeat-length agreement, then QC
// (spec §4.3). It holds nothing but configuration and is safe to reuse
// (and share) across reads and goroutines.
type SingleReadFinder struct {
	cfg Config
}

// NewSingleReadFinder returns a finder bound to cfg. cfg is assumed
// already validated (Config.Validate).
func NewSingleReadFinder(cfg Config) *SingleReadFinder {
	return &SingleReadFinder{cfg: cfg}
}

// Find runs steps S1-S5 of spec §4.3 against read, returning a
// ReadRecord and RejectNone on success, or the zero ReadRecord and the
// reason for rejection.
func (f *SingleReadFinder) Find(read RawRead) (ReadRecord, RejectReason) {
	cfg := f.cfg
	bases := read.Bases
	L := len(bases)
	w := cfg.SearchWindowLength

	step := cfg.MinRepeatLength - 2*w + 1
	if step < 1 {
		step = 1
	}

	var best []int
	limit := L - cfg.MaxRepeatLength - cfg.MaxSpacerLength - w
	for i := 0; i <= limit; i += step {
		pattern := bases[i : i+w]

		lo := i + cfg.MinRepeatLength + cfg.MinSpacerLength
		hi := i + cfg.MaxRepeatLength + cfg.MaxSpacerLength + w
		if lo < 0 {
			lo = 0
		}
		if hi > L {
			hi = L
		}
		if lo >= hi {
			continue
		}

		o := findSeed(bases[lo:hi], pattern, cfg.MaxMismatches)
		if o == NoMatch {
			continue
		}

		chain := []int{i, lo + o}
		chain = scanRight(bases, chain, pattern, cfg)

		if chainBeats(chain, best) {
			best = chain
		}
	}

	if best == nil || len(best) < cfg.MinSeedCount {
		return ReadRecord{}, RejectTooFewSeeds
	}

	repeatLen, leftOffset, ok := extendRepeatLength(bases, best, w)
	if !ok || repeatLen < cfg.MinRepeatLength || repeatLen > cfg.MaxRepeatLength {
		return ReadRecord{}, RejectLengthOutOfBounds
	}

	positions := make(RepeatArray, len(best))
	for i, s := range best {
		positions[i] = Interval{Start: s + leftOffset, End: s + leftOffset + repeatLen}
	}

	if reason := CheckRepeatQC(cfg, read, positions); reason != RejectNone {
		return ReadRecord{}, reason
	}

	return ReadRecord{Read: read, Positions: positions}, RejectNone
}

// scanRight implements S2: starting from the last two recorded
// positions with inter-repeat distance d, search within
// [last+d-scanRange/2, last+d+scanRange/2+w) for pattern, appending
// matches while found. It stops at the first failed extension or once
// the look-ahead window runs off the read. The window is always clamped
// to start strictly after the last recorded position, so a short d (the
// two nearest seeds closer together than half the scan tolerance) can
// never make the search rediscover last itself and stall the chain.
func scanRight(bases string, chain []int, pattern string, cfg Config) []int {
	L := len(bases)
	w := len(pattern)
	for {
		last := chain[len(chain)-1]
		d := last - chain[len(chain)-2]

		lo := last + d - cfg.ScanRange/2
		hi := last + d + cfg.ScanRange/2 + w
		if lo <= last {
			lo = last + 1
		}
		if hi > L {
			hi = L
		}
		if lo >= hi {
			return chain
		}

		o := findSeed(bases[lo:hi], pattern, cfg.MaxMismatches)
		if o == NoMatch {
			return chain
		}
		chain = append(chain, lo+o)
	}
}

// chainBeats reports whether candidate is the preferred of candidate
// and current, per the tie-break rule for overlapping candidate arrays
// in the same read: greater seed count wins; ties break on greater
// total coverage length (the span from first to last recorded start).
func chainBeats(candidate, current []int) bool {
	if current == nil {
		return true
	}
	if len(candidate) != len(current) {
		return len(candidate) > len(current)
	}
	spanC := candidate[len(candidate)-1] - candidate[0]
	spanB := current[len(current)-1] - current[0]
	return spanC > spanB
}

// extendRepeatLength implements S4: grows the repeat length outward
// from the w-wide seed by agreement across every recorded occurrence,
// and returns the agreed length plus the (non-positive) offset of its
// left edge relative to each recorded start. ok is false only if no
// occurrence remains (never the case for a non-empty starts slice).
func extendRepeatLength(bases string, starts []int, w int) (length, leftOffset int, ok bool) {
	if len(starts) == 0 {
		return 0, 0, false
	}

	agree := func(offset int) bool {
		var baseAt byte
		for i, s := range starts {
			pos := s + offset
			if pos < 0 || pos >= len(bases) {
				return false
			}
			b := bases[pos]
			if i == 0 {
				baseAt = b
			} else if b != baseAt {
				return false
			}
		}
		return true
	}

	right := w
	for agree(right) {
		right++
	}

	left := 0
	for agree(left - 1) {
		left--
	}

	return right - left, left, true
}
