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

// newRecord builds a ReadRecord whose positions alternate a repeat R with
// the given spacers, e.g. newRecord("AAAA", "GGGG", "TTTT") lays down
// R, GGGG, R, TTTT, R.
func newRecord(repeat string, spacers ...string) ReadRecord {
	bases := repeat
	positions := RepeatArray{{Start: 0, End: len(repeat)}}
	for _, sp := range spacers {
		bases += sp + repeat
		start := len(bases) - len(repeat)
		positions = append(positions, Interval{Start: start, End: start + len(repeat)})
	}
	return ReadRecord{Read: RawRead{Name: "r", Bases: bases}, Positions: positions}
}

// TestNodeManagerCoverage covers spec §8 seed scenario 6: three reads
// with repeat R and spacers (S1,S2),(S1,S2),(S1,S3) should produce one
// node of coverage 6 and spacer instances of coverage 3, 2 and 1.
func TestNodeManagerCoverage(t *testing.T) {
	const R = "ACGTACGTACGTACGTACGTACG" // 23bp, a valid repeat length
	s1, s2, s3 := "TTTTTTTTTTTTTTTTTTTTTTTTTT", "GGGGGGGGGGGGGGGGGGGGGGGGGG", "CCCCCCCCCCCCCCCCCCCCCCCCCC"

	pool := NewStringPool()
	nm := NewNodeManager(R, pool)
	nm.AddRead(newRecord(R, s1, s2))
	nm.AddRead(newRecord(R, s1, s2))
	nm.AddRead(newRecord(R, s1, s3))

	if len(nm.nodes) != 1 {
		t.Fatalf("expected 1 distinct node, got %d", len(nm.nodes))
	}
	if got := nm.nodes[0].Coverage; got != 6 {
		t.Errorf("node coverage = %d, want 6", got)
	}

	want := map[string]int{s1: 3, s2: 2, s3: 1}
	if len(nm.spacers) != 3 {
		t.Fatalf("expected 3 spacer instances, got %d", len(nm.spacers))
	}
	for _, sp := range nm.spacers {
		s := pool.String(sp.SpacerToken)
		if w, ok := want[s]; !ok || sp.Coverage != w {
			t.Errorf("spacer %q coverage = %d, want %d", s, sp.Coverage, want[s])
		}
	}
}

// TestNodeManagerCleanGraphDetachesLowCoverage checks the pruning floor
// max(2, ceil(0.1*maxCoverage)) from spec §4.8.
func TestNodeManagerCleanGraphDetachesLowCoverage(t *testing.T) {
	const R1 = "ACGTACGTACGTACGTACGTACG"
	const R2 = "TTTTTTTTTTTTTTTTTTTTTTT"
	spacer := "GGGGGGGGGGGGGGGGGGGGGGGGGG"

	pool := NewStringPool()
	nm := NewNodeManager(R1, pool)
	for i := 0; i < 20; i++ {
		nm.AddRead(newRecord(R1, spacer))
	}
	nm.AddRead(newRecord(R2, spacer)) // coverage 1, well under max(2, ceil(0.1*20))=2

	nm.CleanGraph()

	for _, n := range nm.nodes {
		s := pool.String(n.RepeatToken)
		switch s {
		case R1:
			if !n.Attached {
				t.Errorf("high-coverage node %q should remain attached", s)
			}
		case R2:
			if n.Attached {
				t.Errorf("low-coverage node %q should be detached", s)
			}
		}
	}
}

// TestNodeManagerCollapseVariants merges two near-identical repeats
// (similarity ratio >= the shared 0.82 threshold) into the
// higher-coverage representative.
func TestNodeManagerCollapseVariants(t *testing.T) {
	const R = "ACGTACGTACGTACGTACGTACG"             // 23bp
	variant := "ACGTACGTACGTACGTACGTACT"             // single substitution, ratio = 1 - 1/23 ≈ 0.957
	spacer := "GGGGGGGGGGGGGGGGGGGGGGGGGG"

	pool := NewStringPool()
	nm := NewNodeManager(R, pool)
	for i := 0; i < 5; i++ {
		nm.AddRead(newRecord(R, spacer))
	}
	nm.AddRead(newRecord(variant, spacer))

	if len(nm.nodes) != 2 {
		t.Fatalf("expected 2 distinct nodes before collapsing, got %d", len(nm.nodes))
	}

	nm.CollapseVariants(DefaultSimilarityThreshold)

	attached := 0
	var repCoverage int
	for _, n := range nm.nodes {
		if n.Attached {
			attached++
			repCoverage = n.Coverage
		}
	}
	if attached != 1 {
		t.Fatalf("expected 1 attached representative after collapsing, got %d", attached)
	}
	if repCoverage != 6 {
		t.Errorf("representative coverage = %d, want 6", repCoverage)
	}
	if len(nm.spacers) != 1 {
		t.Fatalf("expected spacer edges to merge into 1, got %d", len(nm.spacers))
	}
	if nm.spacers[0].Coverage != 6 {
		t.Errorf("merged spacer coverage = %d, want 6", nm.spacers[0].Coverage)
	}
}
