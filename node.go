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

import "math"

// CrisprNode represents one distinct repeat-instance identity within a
// NodeManager's group (spec §3). Nodes are never deleted, only detached
// by CleanGraph; they live in a single arena slice inside NodeManager
// and are addressed by dense index, never by pointer (design note §9,
// "Ownership graph").
type CrisprNode struct {
	RepeatToken Token
	Coverage    int
	Attached    bool
}

// SpacerKey is the uniqueness key for a SpacerInstance (spec §3):
// (fromRepeatToken, spacerToken, toRepeatToken).
type SpacerKey struct {
	From, Spacer, To Token
}

// SpacerInstance is a directed edge from one CrisprNode to another,
// labelled by the spacer string observed between them (spec §3).
type SpacerInstance struct {
	FromRepeatToken Token
	ToRepeatToken   Token
	SpacerToken     Token
	Coverage        int
	Attached        bool
}

// NodeManager owns one canonical direct-repeat group's graph: its
// CrisprNodes and SpacerInstances, arena-indexed, plus the ReadRecords
// that were folded into it (spec §3, §4.8). No NodeManager shares a
// node or edge with another (spec §5).
type NodeManager struct {
	CanonicalRepeat string

	pool *StringPool

	nodeIndex map[Token]int
	nodes     []CrisprNode
	// nodeRep maps a node's arena index to the index of the node that
	// represents its variant cluster after CollapseVariants; nil before
	// collapsing, in which case every node represents itself.
	nodeRep []int

	spacerIndex map[SpacerKey]int
	spacers     []SpacerInstance

	reads []ReadRecord

	minCoverage, maxCoverage int
}

// NewNodeManager returns an empty manager for the group keyed by
// canonicalRepeat. pool is shared read-after-build across every group in
// the run (spec §5).
func NewNodeManager(canonicalRepeat string, pool *StringPool) *NodeManager {
	return &NodeManager{
		CanonicalRepeat: canonicalRepeat,
		pool:            pool,
		nodeIndex:       make(map[Token]int),
		spacerIndex:     make(map[SpacerKey]int),
	}
}

// AddRead folds rr's repeats and spacers into the graph (spec §4.8,
// "Building"). NodeManager never mutates rr; it only appends it to the
// group's read list for later retrieval (spec §3, ReadRecord lifecycle).
func (nm *NodeManager) AddRead(rr ReadRecord) {
	nm.reads = append(nm.reads, rr)

	tokens := make([]Token, len(rr.Positions))
	for i, iv := range rr.Positions {
		t := nm.pool.Intern(rr.Read.Bases[iv.Start:iv.End])
		tokens[i] = t
		nm.touchNode(t)
	}
	spacers := rr.SpacerStrings()
	for i, sp := range spacers {
		s := nm.pool.Intern(sp)
		nm.touchSpacer(tokens[i], s, tokens[i+1])
	}
}

// Reads returns every ReadRecord folded into this group, in the order
// they were added.
func (nm *NodeManager) Reads() []ReadRecord {
	return nm.reads
}

func (nm *NodeManager) touchNode(t Token) int {
	if idx, ok := nm.nodeIndex[t]; ok {
		nm.nodes[idx].Coverage++
		return idx
	}
	idx := len(nm.nodes)
	nm.nodes = append(nm.nodes, CrisprNode{RepeatToken: t, Coverage: 1, Attached: true})
	nm.nodeIndex[t] = idx
	return idx
}

func (nm *NodeManager) touchSpacer(from, spacer, to Token) int {
	key := SpacerKey{From: from, Spacer: spacer, To: to}
	if idx, ok := nm.spacerIndex[key]; ok {
		nm.spacers[idx].Coverage++
		return idx
	}
	idx := len(nm.spacers)
	nm.spacers = append(nm.spacers, SpacerInstance{
		FromRepeatToken: from,
		ToRepeatToken:   to,
		SpacerToken:     spacer,
		Coverage:        1,
		Attached:        true,
	})
	nm.spacerIndex[key] = idx
	return idx
}

// CollapseVariants merges repeat nodes whose strings are near-identical
// (similarityRatio >= threshold — the same constant RepeatQC's
// repeat/spacer gate uses, spec §4.8 "replays the same similarity
// constant used in QC") into a single node. The highest-coverage member
// of each cluster becomes the representative; coverage and incident
// spacer edges of the rest fold into it. Call once, after every read has
// been added and before CleanGraph.
func (nm *NodeManager) CollapseVariants(threshold float64) {
	n := len(nm.nodes)
	if n == 0 {
		return
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	strs := make([]string, n)
	for i, node := range nm.nodes {
		strs[i] = nm.pool.String(node.RepeatToken)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if find(i) == find(j) {
				continue
			}
			if similarityRatio(strs[i], strs[j]) >= threshold {
				union(i, j)
			}
		}
	}

	clusters := make(map[int][]int)
	for i := 0; i < n; i++ {
		r := find(i)
		clusters[r] = append(clusters[r], i)
	}

	repOf := make([]int, n)
	for _, members := range clusters {
		best := members[0]
		for _, m := range members[1:] {
			if nm.nodes[m].Coverage > nm.nodes[best].Coverage {
				best = m
			}
		}
		for _, m := range members {
			repOf[m] = best
		}
	}
	nm.nodeRep = repOf

	for i := 0; i < n; i++ {
		if repOf[i] == i {
			continue
		}
		nm.nodes[repOf[i]].Coverage += nm.nodes[i].Coverage
		nm.nodes[i].Coverage = 0
		nm.nodes[i].Attached = false
	}

	newIndex := make(map[SpacerKey]int, len(nm.spacerIndex))
	newSpacers := make([]SpacerInstance, 0, len(nm.spacers))
	for _, sp := range nm.spacers {
		fromTok := nm.nodes[repOf[nm.nodeIndex[sp.FromRepeatToken]]].RepeatToken
		toTok := nm.nodes[repOf[nm.nodeIndex[sp.ToRepeatToken]]].RepeatToken
		key := SpacerKey{From: fromTok, Spacer: sp.SpacerToken, To: toTok}
		if idx, ok := newIndex[key]; ok {
			newSpacers[idx].Coverage += sp.Coverage
			continue
		}
		idx := len(newSpacers)
		newSpacers = append(newSpacers, SpacerInstance{
			FromRepeatToken: fromTok,
			ToRepeatToken:   toTok,
			SpacerToken:     sp.SpacerToken,
			Coverage:        sp.Coverage,
			Attached:        true,
		})
		newIndex[key] = idx
	}
	nm.spacers = newSpacers
	nm.spacerIndex = newIndex
}

// CleanGraph implements spec §4.8's cleaning step: detach nodes below
// the coverage floor, detach edges that reference a detached node or
// look like a sequencing error, then recompute the coverage range over
// what remains.
func (nm *NodeManager) CleanGraph() {
	nm.recomputeCoverageRange()

	floor := int(math.Ceil(0.1 * float64(nm.maxCoverage)))
	if floor < 2 {
		floor = 2
	}
	for i := range nm.nodes {
		if nm.nodes[i].Attached && nm.nodes[i].Coverage < floor {
			nm.nodes[i].Attached = false
		}
	}

	nodeAttached := func(tok Token) bool {
		idx, ok := nm.nodeIndex[tok]
		if !ok {
			return false
		}
		return nm.nodes[idx].Attached
	}
	nodeCoverage := func(tok Token) int {
		idx, ok := nm.nodeIndex[tok]
		if !ok {
			return 0
		}
		return nm.nodes[idx].Coverage
	}

	for i := range nm.spacers {
		sp := &nm.spacers[i]
		if !sp.Attached {
			continue
		}
		if !nodeAttached(sp.FromRepeatToken) || !nodeAttached(sp.ToRepeatToken) {
			sp.Attached = false
			continue
		}
		if sp.Coverage == 1 && nodeCoverage(sp.FromRepeatToken) >= 4 && nodeCoverage(sp.ToRepeatToken) >= 4 {
			sp.Attached = false
		}
	}

	nm.recomputeCoverageRange()
}

func (nm *NodeManager) recomputeCoverageRange() {
	nm.minCoverage, nm.maxCoverage = 0, 0
	first := true
	for _, n := range nm.nodes {
		if !n.Attached {
			continue
		}
		if first {
			nm.minCoverage, nm.maxCoverage = n.Coverage, n.Coverage
			first = false
			continue
		}
		if n.Coverage < nm.minCoverage {
			nm.minCoverage = n.Coverage
		}
		if n.Coverage > nm.maxCoverage {
			nm.maxCoverage = n.Coverage
		}
	}
}

// MinCoverage and MaxCoverage report the attached-node coverage range
// computed by the last CleanGraph call.
func (nm *NodeManager) MinCoverage() int { return nm.minCoverage }
func (nm *NodeManager) MaxCoverage() int { return nm.maxCoverage }

// Colors maps every attached node's coverage onto the rainbow ramp
// (spec §4.8). Call after CleanGraph so the range reflects the pruned
// graph.
func (nm *NodeManager) Colors() map[Token]RGB {
	out := make(map[Token]RGB, len(nm.nodes))
	for _, n := range nm.nodes {
		if !n.Attached {
			continue
		}
		out[n.RepeatToken] = rainbowColor(n.Coverage, nm.minCoverage, nm.maxCoverage)
	}
	return out
}

// NodeRecord is one row of the "printing" contract in spec §4.8: a
// node's id (its arena index), repeat string, coverage, color and
// attached flag. The caller (an external renderer) formats it.
type NodeRecord struct {
	ID           int
	RepeatString string
	Coverage     int
	Color        RGB
	Attached     bool
}

// EdgeRecord is one row of the edge half of the printing contract.
type EdgeRecord struct {
	FromID, ToID int
	SpacerString string
	Coverage     int
	Attached     bool
}

// Nodes returns every node in insertion order (order of first
// observation across reads in file order, spec §5), attached or not;
// callers that want only the pruned graph filter on Attached.
func (nm *NodeManager) Nodes() []NodeRecord {
	colors := nm.Colors()
	out := make([]NodeRecord, len(nm.nodes))
	for i, n := range nm.nodes {
		out[i] = NodeRecord{
			ID:           i,
			RepeatString: nm.pool.String(n.RepeatToken),
			Coverage:     n.Coverage,
			Color:        colors[n.RepeatToken],
			Attached:     n.Attached,
		}
	}
	return out
}

// Edges returns every spacer edge in insertion order, attached or not.
func (nm *NodeManager) Edges() []EdgeRecord {
	out := make([]EdgeRecord, len(nm.spacers))
	for i, sp := range nm.spacers {
		out[i] = EdgeRecord{
			FromID:       nm.nodeIndex[sp.FromRepeatToken],
			ToID:         nm.nodeIndex[sp.ToRepeatToken],
			SpacerString: nm.pool.String(sp.SpacerToken),
			Coverage:     sp.Coverage,
			Attached:     sp.Attached,
		}
	}
	return out
}
