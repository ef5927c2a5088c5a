package ioformat

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nileshpatra/gubbins/core"
	"github.com/nileshpatra/gubbins/phylotree"
)

// internalPrefix names placeholder graph vertices for unlabeled Newick
// internal nodes, zero-padded so lexicographic sort matches parse
// (i.e. declaration) order — core.Graph.Neighbors sorts by label, and
// dfs.DFS's traversal order follows that sort.
const internalPrefix = "_internal"

type newickNode struct {
	label     string
	length    float64
	hasLength bool
	children  []*newickNode
}

// ReadNewick parses a single rooted tree from r. It returns a directed
// core.Graph (edges point parent to child), the root vertex ID, a map
// from every leaf vertex ID to true and from every non-leaf vertex ID to
// false, and a map from
// every non-root vertex ID to the length of the edge into it.
func ReadNewick(r io.Reader) (g *core.Graph, rootID string, isTaxon map[string]bool, edgeLength map[string]float64, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", nil, nil, fmt.Errorf("ioformat: ReadNewick: %w", err)
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return nil, "", nil, nil, fmt.Errorf("ioformat: ReadNewick: %w", ErrInvalidNewick)
	}

	pos := 0
	root, err := parseClade(s, &pos)
	if err != nil {
		return nil, "", nil, nil, fmt.Errorf("ioformat: ReadNewick: %w", err)
	}
	skipSpace(s, &pos)
	if pos < len(s) && s[pos] == ';' {
		pos++
	}

	g = core.NewGraph(core.WithDirected(true))
	isTaxon = make(map[string]bool)
	edgeLength = make(map[string]float64)

	internalCounter := 0
	var assign func(n *newickNode, parentID string) (string, error)
	assign = func(n *newickNode, parentID string) (string, error) {
		var id string
		if len(n.children) == 0 {
			if n.label == "" {
				return "", fmt.Errorf("ioformat: ReadNewick: unnamed leaf: %w", ErrInvalidNewick)
			}
			id = n.label
			isTaxon[id] = true
		} else {
			id = fmt.Sprintf("%s%05d", internalPrefix, internalCounter)
			internalCounter++
			isTaxon[id] = false
		}
		if err := g.AddVertex(id); err != nil {
			return "", fmt.Errorf("ioformat: ReadNewick: vertex %s: %w", id, err)
		}
		if parentID != "" {
			if err := g.AddEdge(parentID, id, 0); err != nil {
				return "", fmt.Errorf("ioformat: ReadNewick: edge %s->%s: %w", parentID, id, err)
			}
			edgeLength[id] = n.length
		}
		for _, child := range n.children {
			if _, err := assign(child, id); err != nil {
				return "", err
			}
		}
		return id, nil
	}

	rootID, err = assign(root, "")
	if err != nil {
		return nil, "", nil, nil, err
	}
	return g, rootID, isTaxon, edgeLength, nil
}

// parseClade parses one Newick clade (a leaf, or a parenthesized list of
// child clades) starting at s[*pos], followed by an optional label and
// an optional ":branch_length".
func parseClade(s string, pos *int) (*newickNode, error) {
	n := &newickNode{}
	skipSpace(s, pos)
	if *pos < len(s) && s[*pos] == '(' {
		*pos++
		for {
			child, err := parseClade(s, pos)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
			skipSpace(s, pos)
			if *pos >= len(s) {
				return nil, fmt.Errorf("ioformat: parseClade: unterminated clade: %w", ErrInvalidNewick)
			}
			if s[*pos] == ',' {
				*pos++
				continue
			}
			if s[*pos] == ')' {
				*pos++
				break
			}
			return nil, fmt.Errorf("ioformat: parseClade: expected ',' or ')' at byte %d: %w", *pos, ErrInvalidNewick)
		}
	}

	label, err := parseLabel(s, pos)
	if err != nil {
		return nil, err
	}
	n.label = label

	skipSpace(s, pos)
	if *pos < len(s) && s[*pos] == ':' {
		*pos++
		length, err := parseLength(s, pos)
		if err != nil {
			return nil, err
		}
		n.length = length
		n.hasLength = true
	}
	return n, nil
}

func skipSpace(s string, pos *int) {
	for *pos < len(s) && (s[*pos] == ' ' || s[*pos] == '\t' || s[*pos] == '\n' || s[*pos] == '\r') {
		*pos++
	}
}

// isLabelDelim reports whether b ends an unquoted label or branch
// length token.
func isLabelDelim(b byte) bool {
	switch b {
	case '(', ')', ',', ':', ';', ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// parseLabel reads an optional node label: a single-quoted string (read
// verbatim up to the next quote), or an unquoted run of non-delimiter
// bytes. Underscores are preserved, not translated to spaces.
func parseLabel(s string, pos *int) (string, error) {
	skipSpace(s, pos)
	if *pos >= len(s) {
		return "", nil
	}
	if s[*pos] == '\'' {
		start := *pos + 1
		end := strings.IndexByte(s[start:], '\'')
		if end < 0 {
			return "", fmt.Errorf("ioformat: parseLabel: unterminated quoted label: %w", ErrInvalidNewick)
		}
		*pos = start + end + 1
		return s[start : start+end], nil
	}
	start := *pos
	for *pos < len(s) && !isLabelDelim(s[*pos]) {
		*pos++
	}
	return s[start:*pos], nil
}

// parseLength reads a floating-point branch length token.
func parseLength(s string, pos *int) (float64, error) {
	skipSpace(s, pos)
	start := *pos
	for *pos < len(s) && !isLabelDelim(s[*pos]) {
		*pos++
	}
	token := s[start:*pos]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("ioformat: parseLength: %q: %w", token, ErrInvalidBranchLength)
	}
	return v, nil
}

// WriteNewick writes tr as a rooted Newick string with branch lengths.
// Leaf labels are written verbatim; internal node labels (the
// synthesized "Node_k" placeholders) are suppressed, matching the
// reference tool's final tree output. edgeLength overrides
// tr.EdgeLength when non-nil — the engine rewrites branch lengths to
// reconstructed SNP counts before writing the output tree.
func WriteNewick(w io.Writer, tr *phylotree.Tree, edgeLength []float64) error {
	if edgeLength == nil {
		edgeLength = tr.EdgeLength
	}
	var b strings.Builder
	writeClade(&b, tr, edgeLength, tr.Root)
	b.WriteByte(';')
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("ioformat: WriteNewick: %w", err)
	}
	return nil
}

func writeClade(b *strings.Builder, tr *phylotree.Tree, edgeLength []float64, id int) {
	children := append([]int(nil), tr.Children[id]...)
	sort.Ints(children)
	if len(children) > 0 {
		b.WriteByte('(')
		for i, child := range children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeClade(b, tr, edgeLength, child)
		}
		b.WriteByte(')')
	} else {
		b.WriteString(tr.Labels[id])
	}
	if id != tr.Root {
		fmt.Fprintf(b, ":%s", strconv.FormatFloat(edgeLength[id], 'g', -1, 64))
	}
}
