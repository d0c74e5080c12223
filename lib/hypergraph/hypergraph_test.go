package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHypergraph(t *testing.T) *Hypergraph {
	h, err := FromEdges([][]string{
		{"1", "2", "3"},
		{"2", "3", "4", "5"},
		{"3", "4", "5"},
	})
	require.NoError(t, err)
	return h
}

func TestFromEdges(t *testing.T) {
	h := testHypergraph(t)
	assert.Equal(t, 5, h.NumNodes())
	assert.Equal(t, 3, h.NumEdges())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, h.Nodes())
	assert.Equal(t, []string{"0", "1", "2"}, h.Edges())
	assert.Equal(t, 3, h.Degree("3"))
	assert.Equal(t, 1, h.Degree("1"))
	assert.Equal(t, 4, h.Size("1"))
	assert.Equal(t, 4, h.MaxEdgeSize())
}

func TestAddEdgeRejectsDuplicatesAndEmpty(t *testing.T) {
	h := New()
	require.NoError(t, h.AddEdge("e", []string{"a", "b"}))
	assert.Error(t, h.AddEdge("e", []string{"c"}))
	assert.Error(t, h.AddEdge("f", nil))
}

func TestAddEdgeDeduplicatesMembers(t *testing.T) {
	h := New()
	require.NoError(t, h.AddEdge("e", []string{"a", "b", "a"}))
	assert.Equal(t, []string{"a", "b"}, h.Members("e"))
	assert.Equal(t, 2, h.Size("e"))
}

func TestNodeNeighbors(t *testing.T) {
	h := testHypergraph(t)
	assert.Equal(t, []string{"2", "3"}, h.NodeNeighbors("1"))
	assert.Equal(t, []string{"1", "2", "4", "5"}, h.NodeNeighbors("3"))
}

func TestEdgeNeighbors(t *testing.T) {
	h := testHypergraph(t)
	assert.Equal(t, []string{"1", "2"}, h.EdgeNeighbors("0"))
	assert.Equal(t, []string{"0", "2"}, h.EdgeNeighbors("1"))
}

func TestParse(t *testing.T) {
	data := []byte(`{
		"hypergraph-data": {"name": "toy"},
		"node-data": {"1": {}, "2": {}, "3": {}, "4": {}, "9": {}},
		"edge-data": {"0": {}, "1": {}},
		"edge-dict": {"1": ["3", "4"], "0": ["1", "2", "3"]}
	}`)
	h, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, h.Edges())
	// Edge order drives node order; the isolated node comes last.
	assert.Equal(t, []string{"1", "2", "3", "4", "9"}, h.Nodes())
	assert.Equal(t, []string{"1", "2", "3"}, h.Members("0"))
}

func TestParseNumericMemberIDs(t *testing.T) {
	data := []byte(`{"edge-dict": {"0": [1, 2], "1": [2, 3]}}`)
	h, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, h.Members("0"))
	assert.Equal(t, []string{"2", "3"}, h.Members("1"))
}

func TestParseSortsEdgeIDsNumerically(t *testing.T) {
	data := []byte(`{"edge-dict": {"10": ["a"], "2": ["b"], "1": ["c"]}}`)
	h, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "10"}, h.Edges())
}

func TestParseMissingEdgeDict(t *testing.T) {
	_, err := Parse([]byte(`{"hypergraph-data": {}}`))
	assert.Error(t, err)
}

func TestCliqueExpansion(t *testing.T) {
	h, err := FromEdges([][]string{{"a", "b", "c"}})
	require.NoError(t, err)
	e := h.CliqueExpansion()
	assert.Equal(t, 3, e.Graph.Nodes().Len())
	assert.Equal(t, 3, e.Graph.Edges().Len())
	assert.Equal(t, "a", e.ID(0))
}

func TestLineExpansion(t *testing.T) {
	h := testHypergraph(t)
	e := h.LineExpansion()
	assert.Equal(t, 3, e.Graph.Nodes().Len())
	// Every pair of edges shares a node.
	assert.Equal(t, 3, e.Graph.Edges().Len())
}

func TestDirectedMirrorsEdges(t *testing.T) {
	h, err := FromEdges([][]string{{"a", "b"}})
	require.NoError(t, err)
	d := h.CliqueExpansion().Directed()
	assert.True(t, d.HasEdgeFromTo(0, 1))
	assert.True(t, d.HasEdgeFromTo(1, 0))
}
