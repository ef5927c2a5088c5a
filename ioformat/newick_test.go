package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileshpatra/gubbins/ioformat"
	"github.com/nileshpatra/gubbins/phylotree"
)

func TestReadNewick_TwoLeaves(t *testing.T) {
	g, rootID, isTaxon, edgeLength, err := ioformat.ReadNewick(strings.NewReader("(A:1.5,B:2.25);"))
	require.NoError(t, err)
	require.False(t, isTaxon[rootID])
	require.True(t, isTaxon["A"])
	require.True(t, isTaxon["B"])
	require.Equal(t, 1.5, edgeLength["A"])
	require.Equal(t, 2.25, edgeLength["B"])

	tr, err := phylotree.Compile(g, rootID, isTaxon, edgeLength, []string{"A", "B"})
	require.NoError(t, err)
	require.Equal(t, 3, tr.NodeCount())
}

func TestReadNewick_QuotedAndUnderscoreLabels(t *testing.T) {
	_, _, isTaxon, edgeLength, err := ioformat.ReadNewick(strings.NewReader("('homo  sapiens':1,Macaca_mulatta:2);"))
	require.NoError(t, err)
	require.True(t, isTaxon["homo  sapiens"])
	require.True(t, isTaxon["Macaca_mulatta"])
	require.Equal(t, 1.0, edgeLength["homo  sapiens"])
	require.Equal(t, 2.0, edgeLength["Macaca_mulatta"])
}

func TestReadNewick_Caterpillar(t *testing.T) {
	g, rootID, isTaxon, edgeLength, err := ioformat.ReadNewick(strings.NewReader("((A:1,B:1):2,C:3);"))
	require.NoError(t, err)

	tr, err := phylotree.Compile(g, rootID, isTaxon, edgeLength, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Equal(t, 5, tr.NodeCount())

	aID, err := tr.IndexOf("A")
	require.NoError(t, err)
	require.Equal(t, 1.0, tr.EdgeLength[aID])

	cID, err := tr.IndexOf("C")
	require.NoError(t, err)
	require.Equal(t, 3.0, tr.EdgeLength[cID])
}

func TestReadNewick_MalformedInput(t *testing.T) {
	_, _, _, _, err := ioformat.ReadNewick(strings.NewReader("(((A:1,B:1);"))
	require.ErrorIs(t, err, ioformat.ErrInvalidNewick)
}

func TestReadNewick_InvalidBranchLength(t *testing.T) {
	_, _, _, _, err := ioformat.ReadNewick(strings.NewReader("(A:x,B:1);"))
	require.ErrorIs(t, err, ioformat.ErrInvalidBranchLength)
}

func TestWriteNewick_SuppressesInternalLabels(t *testing.T) {
	g, rootID, isTaxon, edgeLength, err := ioformat.ReadNewick(strings.NewReader("((A:1,B:1):2,C:3);"))
	require.NoError(t, err)
	tr, err := phylotree.Compile(g, rootID, isTaxon, edgeLength, []string{"A", "B", "C"})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, ioformat.WriteNewick(&buf, tr, nil))
	out := buf.String()

	require.True(t, strings.HasSuffix(strings.TrimSpace(out), ";"))
	require.NotContains(t, out, "Node_")
	require.Contains(t, out, "A:1")
	require.Contains(t, out, "C:3")
}

func TestWriteNewick_OverridesEdgeLengths(t *testing.T) {
	g, rootID, isTaxon, edgeLength, err := ioformat.ReadNewick(strings.NewReader("(A:1,B:1);"))
	require.NoError(t, err)
	tr, err := phylotree.Compile(g, rootID, isTaxon, edgeLength, []string{"A", "B"})
	require.NoError(t, err)

	override := make([]float64, tr.NodeCount())
	aID, err := tr.IndexOf("A")
	require.NoError(t, err)
	override[aID] = 7

	var buf strings.Builder
	require.NoError(t, ioformat.WriteNewick(&buf, tr, override))
	require.Contains(t, buf.String(), "A:7")
}
