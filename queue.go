package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a min-priority queue of tree nodes, ordered by frequency.
//
// Ties are broken by NodeID: leaves come before internal nodes, leaves in the
// order they were given to BuildTree, internal nodes in creation order.
type nodeQueue struct {
	tree *Tree
	list []NodeID
}

// Init establishes the heap ordering over the current contents in O(n).
func (q *nodeQueue) Init() {
	heap.Init(q)
}

// Insert adds a node in O(log n).
func (q *nodeQueue) Insert(id NodeID) {
	heap.Push(q, id)
}

// ExtractMin removes and returns the lowest-frequency node in O(log n).
func (q *nodeQueue) ExtractMin() NodeID {
	assert.Assertf(len(q.list) != 0, "ExtractMin on empty nodeQueue")
	return heap.Pop(q).(NodeID)
}

// type nodeQueue implements heap.Interface {{{

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	af, bf := q.tree.nodes[a].freq, q.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(NodeID))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
