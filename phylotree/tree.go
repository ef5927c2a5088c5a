package phylotree

import (
	"fmt"
	"sort"

	"github.com/nileshpatra/gubbins/core"
	"github.com/nileshpatra/gubbins/dfs"
	"github.com/nileshpatra/gubbins/matrix"
)

// Tree is a rooted phylogenetic tree in array form: every node has a
// dense integer ID, and parent/child/edge-length/label lookups are all
// slice indexing rather than pointer chasing.
type Tree struct {
	Labels     []string
	Parent     []int // -1 for the root
	Children   [][]int
	EdgeLength []float64 // length of the edge into this node from its parent; 0 for the root
	IsLeaf     []bool    // true for nodes carrying an observed taxon sequence
	RowIndex   []int     // row of this node in the output alignment
	Preorder   []int     // node IDs in preorder (root first)
	Postorder  []int     // node IDs in postorder (root last)
	Root       int
	LogP       []*matrix.Dense // per-node log P(t); nil for the root and until attached

	labelIndex map[string]int
}

// NodeCount returns the number of nodes (taxa + internal + root).
func (t *Tree) NodeCount() int { return len(t.Labels) }

// IndexOf returns the node ID carrying the given label.
func (t *Tree) IndexOf(label string) (int, error) {
	id, ok := t.labelIndex[label]
	if !ok {
		return 0, fmt.Errorf("phylotree: IndexOf(%s): %w", label, ErrUnknownLabel)
	}
	return id, nil
}

const nodeLabelPrefix = "Node_"

// Compile builds a Tree from a directed core.Graph whose edges point
// from parent to child, rooted at rootID.
//
// isTaxon maps every vertex ID in g to whether it is a genuine,
// externally supplied taxon label (true) or an unlabeled internal node
// awaiting synthesis (false). edgeLength maps every non-root vertex ID
// to the length of the edge from its parent. taxaOrder lists taxon
// labels in the order they should receive output-alignment rows;
// synthesized internal nodes receive rows afterward, in the order their
// labels are created (preorder).
func Compile(g *core.Graph, rootID string, isTaxon map[string]bool, edgeLength map[string]float64, taxaOrder []string) (*Tree, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(rootID) {
		return nil, fmt.Errorf("phylotree: Compile: %w", ErrMissingRoot)
	}

	result, err := dfs.DFS(g, rootID)
	if err != nil {
		return nil, fmt.Errorf("phylotree: Compile: %w", err)
	}

	n := len(result.PreOrder)
	origID := make([]string, n)
	idOf := make(map[string]int, n)
	for id, label := range result.PreOrder {
		origID[id] = label
		idOf[label] = id
	}

	t := &Tree{
		Labels:     make([]string, n),
		Parent:     make([]int, n),
		Children:   make([][]int, n),
		EdgeLength: make([]float64, n),
		IsLeaf:     make([]bool, n),
		RowIndex:   make([]int, n),
		Preorder:   make([]int, n),
		Postorder:  make([]int, n),
		LogP:       make([]*matrix.Dense, n),
		labelIndex: make(map[string]int, n),
	}

	for id := 0; id < n; id++ {
		t.Preorder[id] = id
	}
	for i, label := range result.PostOrder {
		t.Postorder[i] = idOf[label]
	}

	rootNodeID := idOf[rootID]
	t.Root = rootNodeID

	for id, label := range origID {
		if id == rootNodeID {
			t.Parent[id] = -1
			continue
		}
		parentLabel, ok := result.Parent[label]
		if !ok {
			t.Parent[id] = -1
			continue
		}
		pid := idOf[parentLabel]
		t.Parent[id] = pid
		t.Children[pid] = append(t.Children[pid], id)
		t.EdgeLength[id] = edgeLength[label]
	}
	for pid := range t.Children {
		sort.Ints(t.Children[pid])
	}

	usedLabels := make(map[string]bool, n)
	for label, isTax := range isTaxon {
		if isTax {
			usedLabels[label] = true
		}
	}

	nextNodeNum := 1
	for id := 0; id < n; id++ {
		label := origID[id]
		if isTaxon[label] {
			t.Labels[id] = label
			t.IsLeaf[id] = true
			continue
		}
		synth := fmt.Sprintf("%s%d", nodeLabelPrefix, nextNodeNum)
		nextNodeNum++
		if usedLabels[synth] {
			return nil, fmt.Errorf("phylotree: Compile: %s: %w", synth, ErrLabelCollision)
		}
		t.Labels[id] = synth
	}

	for id, label := range t.Labels {
		t.labelIndex[label] = id
	}

	row := 0
	for _, taxon := range taxaOrder {
		id, err := t.IndexOf(taxon)
		if err != nil {
			return nil, fmt.Errorf("phylotree: Compile: taxon row assignment: %w", err)
		}
		t.RowIndex[id] = row
		row++
	}
	for id := 0; id < n; id++ {
		if t.IsLeaf[id] {
			continue
		}
		t.RowIndex[id] = row
		row++
	}

	return t, nil
}
