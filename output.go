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

// GraphNode is the wire form of a NodeRecord: one row of the node half
// of the serializable graph description (spec §6).
type GraphNode struct {
	ID       int    `json:"nodeId"`
	Repeat   string `json:"repeatString"`
	Coverage int    `json:"coverage"`
	Color    RGB    `json:"colorRGB"`
	Attached bool   `json:"attached"`
}

// GraphEdge is the wire form of an EdgeRecord.
type GraphEdge struct {
	FromID   int    `json:"fromNodeId"`
	ToID     int    `json:"toNodeId"`
	Spacer   string `json:"spacerString"`
	Coverage int    `json:"coverage"`
	Attached bool   `json:"attached"`
}

// GraphDescription is the per-group output handed to the external
// renderer (spec §6): canonical repeat, nodes, edges. It carries no
// formatting decisions of its own; Graphviz/table rendering is the
// collaborator's job (spec §1).
type GraphDescription struct {
	CanonicalRepeat string      `json:"canonicalRepeat"`
	Nodes           []GraphNode `json:"nodes"`
	Edges           []GraphEdge `json:"edges"`
}

// Describe builds the serializable graph description for a single
// group's NodeManager, after CleanGraph (and, if used, CollapseVariants)
// have run.
func Describe(nm *NodeManager) GraphDescription {
	nodeRecords := nm.Nodes()
	edgeRecords := nm.Edges()

	nodes := make([]GraphNode, len(nodeRecords))
	for i, n := range nodeRecords {
		nodes[i] = GraphNode{
			ID:       n.ID,
			Repeat:   n.RepeatString,
			Coverage: n.Coverage,
			Color:    n.Color,
			Attached: n.Attached,
		}
	}

	edges := make([]GraphEdge, len(edgeRecords))
	for i, e := range edgeRecords {
		edges[i] = GraphEdge{
			FromID:   e.FromID,
			ToID:     e.ToID,
			Spacer:   e.SpacerString,
			Coverage: e.Coverage,
			Attached: e.Attached,
		}
	}

	return GraphDescription{
		CanonicalRepeat: nm.CanonicalRepeat,
		Nodes:           nodes,
		Edges:           edges,
	}
}
