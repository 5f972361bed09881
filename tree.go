package huffman

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf holds a Symbol and its
// frequency; an internal node holds InvalidSymbol, the sum of its children's
// frequencies, and exactly two children.
type Node struct {
	symbol Symbol
	freq   uint64
	left   *Node
	right  *Node

	// seq orders nodes of equal frequency: leaves are numbered in
	// ascending Symbol order, merged nodes in order of creation.
	seq uint32
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Freq returns the node's frequency.
func (n *Node) Freq() uint64 {
	return n.freq
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Leaves returns the leaves of the subtree rooted at this node, in
// left-to-right order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	stack := []*Node{n}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack = stack[:last]
		if top.IsLeaf() {
			out = append(out, top)
			continue
		}
		stack = append(stack, top.right, top.left)
	}
	return out
}

// Depth returns the number of edges on the longest path from this node to
// a leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.left.Depth(), n.right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// String returns a programmer-readable representation of the subtree.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s:%d", n.symbol, n.freq)
	}
	return fmt.Sprintf("(%d %v %v)", n.freq, n.left, n.right)
}

// BuildTree builds a Huffman tree from the frequency table by repeatedly
// merging the two nodes of lowest frequency.  Ties are broken by the
// ascending Symbol order of leaves, with merged nodes ordered after all
// leaves in their order of creation.  The node popped first becomes the
// left child.
//
// A table with a single Symbol yields a lone leaf as the root.  An empty
// table yields ErrEmptyInput.
//
func BuildTree(ft FrequencyTable) (*Node, error) {
	numLeaves := len(ft.entries)
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}
	assert.Assertf(uint64(numLeaves) <= math.MaxUint32/2, "too many symbols: %d", numLeaves)

	// Step 1: build a minheap of leaves.  The table is already sorted by
	// Symbol, which gives the leaves their sequence numbers.

	nodes := make([]*Node, 0, numLeaves)
	for index, entry := range ft.entries {
		assert.Assertf(entry.Count != 0, "symbol %s has a count of zero", entry.Symbol)
		nodes = append(nodes, &Node{
			symbol: entry.Symbol,
			freq:   entry.Count,
			seq:    uint32(index),
		})
	}

	h := nodeHeap{nodes}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  This takes exactly numLeaves-1 merges.

	nextSeq := uint32(numLeaves)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, &Node{
			symbol: InvalidSymbol,
			freq:   freqSum,
			left:   a,
			right:  b,
			seq:    nextSeq,
		})
		nextSeq++
	}
	assert.Assertf(nextSeq == uint32(2*numLeaves-1), "expected %d nodes, built %d", 2*numLeaves-1, nextSeq)

	return heap.Pop(&h).(*Node), nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
