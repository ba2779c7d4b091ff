package huffpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// textbookEntries is the classic example distribution from CLRS.
var textbookEntries = []FrequencyEntry{
	{'a', 5},
	{'b', 9},
	{'c', 12},
	{'d', 13},
	{'e', 16},
	{'f', 45},
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(textbookEntries)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\tNode(0) = leaf{symbol: 97, freq: 5}\n",
		"\tNode(1) = leaf{symbol: 98, freq: 9}\n",
		"\tNode(2) = leaf{symbol: 99, freq: 12}\n",
		"\tNode(3) = leaf{symbol: 100, freq: 13}\n",
		"\tNode(4) = leaf{symbol: 101, freq: 16}\n",
		"\tNode(5) = leaf{symbol: 102, freq: 45}\n",
		"\tNode(6) = internal{freq: 14, left: 0, right: 1}\n",
		"\tNode(7) = internal{freq: 25, left: 2, right: 3}\n",
		"\tNode(8) = internal{freq: 30, left: 6, right: 4}\n",
		"\tNode(9) = internal{freq: 55, left: 7, right: 8}\n",
		"\tNode(10) = internal{freq: 100, left: 5, right: 9}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	checkTreeShape(t, tree)
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	require.True(t, tree.Empty())
	require.Equal(t, NoNode, tree.Root())
	require.Zero(t, tree.NumNodes())

	var zero Tree
	require.Equal(t, NoNode, zero.Root())
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree([]FrequencyEntry{{'a', 4}})
	root := tree.Root()
	require.Equal(t, NodeID(0), root)
	require.True(t, tree.IsLeaf(root))
	require.Equal(t, Symbol('a'), tree.Symbol(root))
	require.Equal(t, uint64(4), tree.Freq(root))

	left, right := tree.Children(root)
	require.Equal(t, NoNode, left)
	require.Equal(t, NoNode, right)
}

func TestBuildTree_RandomShapes(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ft := CountFrequencies(makeSkewedData(5000, seed))
		tree := BuildTree(ft.Entries())
		require.Equal(t, ft.Len(), tree.NumLeaves())
		require.Equal(t, ft.Total(), tree.Freq(tree.Root()))
		checkTreeShape(t, tree)
	}
}

func TestBuildTree_RejectsDuplicates(t *testing.T) {
	require.Panics(t, func() {
		BuildTree([]FrequencyEntry{{'a', 1}, {'a', 2}})
	})
	require.Panics(t, func() {
		BuildTree([]FrequencyEntry{{'a', 0}})
	})
}

func TestNodeQueue_TieBreak(t *testing.T) {
	tree := Tree{numLeaves: 3}
	for _, freq := range []uint64{7, 3, 3, 3, 7} {
		tree.nodes = append(tree.nodes, treeNode{freq: freq, left: NoNode, right: NoNode})
	}

	q := nodeQueue{tree: &tree, list: []NodeID{4, 3, 2, 1, 0}}
	q.Init()

	var order []NodeID
	for q.Len() != 0 {
		order = append(order, q.ExtractMin())
	}
	require.Equal(t, []NodeID{1, 2, 3, 0, 4}, order)

	q.Insert(2)
	q.Insert(0)
	q.Insert(1)
	require.Equal(t, NodeID(1), q.ExtractMin())
	require.Equal(t, NodeID(2), q.ExtractMin())
	require.Equal(t, NodeID(0), q.ExtractMin())
}

// checkTreeShape verifies that every internal node has two children whose
// frequencies add up to its own, and that every node is reachable exactly
// once from the root.
func checkTreeShape(t *testing.T, tree Tree) {
	t.Helper()

	visited := make([]bool, tree.NumNodes())
	stack := []NodeID{tree.Root()}
	for len(stack) != 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		require.False(t, visited[id], "node %d reached twice", id)
		visited[id] = true

		left, right := tree.Children(id)
		if tree.IsLeaf(id) {
			require.Equal(t, NoNode, left)
			require.Equal(t, NoNode, right)
			continue
		}
		require.NotEqual(t, NoNode, left)
		require.NotEqual(t, NoNode, right)
		require.Equal(t, tree.Freq(id), tree.Freq(left)+tree.Freq(right))
		stack = append(stack, left, right)
	}
	for id, ok := range visited {
		require.True(t, ok, "node %d unreachable", id)
	}
	require.Equal(t, 2*tree.NumLeaves()-1, tree.NumNodes())
}
