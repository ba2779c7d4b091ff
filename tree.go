package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// NoNode is returned in place of a NodeID when no node exists.
const NoNode = NodeID(-1)

// Tree is a Huffman code tree.  Every internal node has exactly two children
// and every symbol lives in a leaf.
//
// Nodes are stored in a single arena.  The leaves occupy IDs 0 through
// NumLeaves()-1, in the order their entries were passed to BuildTree; internal
// nodes follow in the order they were created.
type Tree struct {
	nodes     []treeNode
	numLeaves int
	root      NodeID
}

type treeNode struct {
	freq   uint64
	left   NodeID
	right  NodeID
	symbol Symbol
}

// BuildTree constructs the Huffman tree for the given entries by repeatedly
// merging the two lowest-frequency nodes.  The first node extracted becomes
// the left child and the second becomes the right child.
//
// Each entry must have a distinct Symbol and a non-zero Count.  Zero entries
// produce an empty Tree; a single entry produces a Tree whose root is a leaf.
//
func BuildTree(entries []FrequencyEntry) Tree {
	numLeaves := len(entries)
	if numLeaves == 0 {
		return Tree{root: NoNode}
	}

	t := Tree{
		nodes:     make([]treeNode, 0, 2*numLeaves-1),
		numLeaves: numLeaves,
	}

	var seen [NumSymbols]bool
	for _, entry := range entries {
		assert.Assertf(entry.Count != 0, "symbol %d has a zero count", entry.Symbol)
		assert.Assertf(!seen[entry.Symbol], "symbol %d appears more than once", entry.Symbol)
		seen[entry.Symbol] = true
		t.nodes = append(t.nodes, treeNode{
			freq:   entry.Count,
			left:   NoNode,
			right:  NoNode,
			symbol: entry.Symbol,
		})
	}

	q := nodeQueue{tree: &t, list: make([]NodeID, numLeaves, 2*numLeaves)}
	for index := range q.list {
		q.list[index] = NodeID(index)
	}
	q.Init()

	for q.Len() > 1 {
		left := q.ExtractMin()
		right := q.ExtractMin()
		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{
			freq:  saturatingAdd(t.nodes[left].freq, t.nodes[right].freq),
			left:  left,
			right: right,
		})
		q.Insert(id)
	}

	t.root = q.ExtractMin()
	return t
}

// Empty reports whether this Tree has no nodes at all.
func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Root returns the root of this Tree, or NoNode if the Tree is empty.
func (t Tree) Root() NodeID {
	if t.Empty() {
		return NoNode
	}
	return t.root
}

// NumNodes returns the total number of nodes, leaves included.
func (t Tree) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of symbols.
func (t Tree) NumLeaves() int {
	return t.numLeaves
}

// IsLeaf reports whether id is a leaf.
func (t Tree) IsLeaf(id NodeID) bool {
	t.check(id)
	return int(id) < t.numLeaves
}

// Children returns the left and right children of an internal node, or
// (NoNode, NoNode) for a leaf.
func (t Tree) Children(id NodeID) (left NodeID, right NodeID) {
	t.check(id)
	node := t.nodes[id]
	return node.left, node.right
}

// Symbol returns the symbol held by a leaf.
func (t Tree) Symbol(id NodeID) Symbol {
	assert.Assertf(t.IsLeaf(id), "node %d is not a leaf", id)
	return t.nodes[id].symbol
}

// Freq returns the frequency of a node.  The frequency of an internal node is
// the sum of its children's frequencies.
func (t Tree) Freq(id NodeID) uint64 {
	t.check(id)
	return t.nodes[id].freq
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index := range t.nodes {
		id := NodeID(index)
		node := t.nodes[index]
		if t.IsLeaf(id) {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf{symbol: %d, freq: %d}\n", id, node.symbol, node.freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = internal{freq: %d, left: %d, right: %d}\n", id, node.freq, node.left, node.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t Tree) check(id NodeID) {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "node %d out of range [0, %d)", id, len(t.nodes))
}
