package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code.  Symbols that did not occur in the
// tree have no Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize int
	maxSize int
}

// BuildCodeTable is shorthand for NewCodeTable(BuildTree(ft.Entries())).
func BuildCodeTable(ft *FrequencyTable) CodeTable {
	return NewCodeTable(BuildTree(ft.Entries()))
}

// NewCodeTable derives a Code for every leaf of t by walking the tree: each
// step to a left child appends a 0 bit and each step to a right child appends
// a 1 bit.
//
// A Tree that is a single leaf has no edges to walk.  By convention its
// symbol receives the 1-bit code "0".  An empty Tree produces an empty
// CodeTable.
//
func NewCodeTable(t Tree) CodeTable {
	var ct CodeTable
	root := t.Root()
	if root == NoNode {
		return ct
	}
	if t.IsLeaf(root) {
		ct.set(t.Symbol(root), MakeCode(1, 0))
		return ct
	}

	// Walk the tree with an explicit stack.  stackItem.x records progress:
	//   x=0 → the left child has not been visited
	//   x=1 → the right child has not been visited
	//   x=2 → both children are done
	//
	// The node on top of the stack sits at depth len(stack)-1, which is
	// also the length of path on arrival.  Only internal nodes are pushed.

	type stackItem struct {
		id NodeID
		x  byte
	}

	stack := make([]stackItem, 0, log2int(t.NumLeaves())+1)
	var path Code

	visit := func(id NodeID) {
		if t.IsLeaf(id) {
			ct.set(t.Symbol(id), path.Clone())
			return
		}
		stack = append(stack, stackItem{id: id})
	}

	stack = append(stack, stackItem{id: root})
	for len(stack) != 0 {
		depth := len(stack) - 1
		top := &stack[depth]
		x := top.x
		top.x++
		left, right := t.Children(top.id)
		switch x {
		case 0:
			path.truncate(depth)
			path.push(false)
			visit(left)
		case 1:
			path.truncate(depth)
			path.push(true)
			visit(right)
		default:
			stack = stack[:depth]
		}
	}

	assert.Assertf(ct.count == t.NumLeaves(), "assigned %d codes for %d leaves", ct.count, t.NumLeaves())
	return ct
}

// Lookup returns the Code for symbol, if it has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size() != 0
}

// Len returns the number of symbols that have a Code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code, or 0 if the table is empty.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code, or 0 if the table is empty.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// Symbols lists the symbols that have a Code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.count)
	for symbol := range ct.codes {
		if ct.codes[symbol].Size() != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// SizeBySymbol returns the bit length of every symbol's Code, 0 for symbols
// without one.
func (ct *CodeTable) SizeBySymbol() []int {
	out := make([]int, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size()
	}
	return out
}

// EncodedBits returns the number of bits needed to encode input with the
// given frequencies, i.e. the sum of count × code length.  Symbols without a
// Code contribute nothing.
func (ct *CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var total uint64
	for symbol := range ct.codes {
		size := uint64(ct.codes[symbol].Size())
		total = saturatingAdd(total, size*ft.Count(Symbol(symbol)))
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// WriteTable writes a human-readable listing of the table, one symbol per
// line in ascending order.
func (ct *CodeTable) WriteTable(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Char    |  Huffman Code\n")
	for _, symbol := range ct.Symbols() {
		label := strconv.Quote(string([]byte{byte(symbol)}))
		fmt.Fprintf(&buf, "%-7s |  %s\n", label, ct.codes[symbol].Bits())
	}
	return buf.WriteTo(w)
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	size := hc.Size()
	assert.Assertf(size != 0, "empty code for symbol %d", symbol)
	assert.Assertf(ct.codes[symbol].Size() == 0, "symbol %d assigned twice", symbol)
	ct.codes[symbol] = hc
	if ct.count == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.count++
}
