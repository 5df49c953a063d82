// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"container/heap"
	"fmt"
	"strings"
)

const noChild = -1

type treeNode struct {
	weight      uint64
	symbol      uint8
	left, right int
}

func (node treeNode) leaf() bool {
	return node.left == noChild
}

// Tree is a Huffman tree stored as an arena of nodes.  Leaves come first in ascending octet order; each
// internal node is appended as it is created, so a node's index is also its creation sequence number.
type Tree struct {
	nodes []treeNode
	root  int
}

// nodeQueue is a min-heap of arena indices ordered by (weight, index).
type nodeQueue struct {
	nodes   []treeNode
	indices []int
}

func (q *nodeQueue) Len() int {
	return len(q.indices)
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.indices[i], q.indices[j]
	wa, wb := q.nodes[a].weight, q.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (q *nodeQueue) Swap(i, j int) {
	q.indices[i], q.indices[j] = q.indices[j], q.indices[i]
}

func (q *nodeQueue) Push(x interface{}) {
	q.indices = append(q.indices, x.(int))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.indices) - 1
	index := q.indices[last]
	q.indices = q.indices[:last]
	return index
}

// BuildTree constructs the Huffman tree for ft, or returns nil if every counter is zero.
//
// The two lightest nodes are merged repeatedly, the first popped becoming the left child.  Equal weights
// are broken by creation order: leaves in ascending octet order, then internal nodes in the order they were
// merged.  Rebuilding from the same table therefore always yields the same tree.
func BuildTree(ft *FrequencyTable) *Tree {
	if ft.Empty() {
		return nil
	}
	distinct := ft.Distinct()

	// A tree with n leaves has n-1 internal nodes.
	queue := &nodeQueue{
		nodes:   make([]treeNode, 0, 2*distinct-1),
		indices: make([]int, 0, distinct),
	}
	for sym, f := range ft {
		if f != 0 {
			queue.indices = append(queue.indices, len(queue.nodes))
			queue.nodes = append(queue.nodes, treeNode{uint64(f), uint8(sym), noChild, noChild})
		}
	}
	heap.Init(queue)

	for queue.Len() > 1 {
		left := heap.Pop(queue).(int)
		right := heap.Pop(queue).(int)
		merged := treeNode{
			weight: queue.nodes[left].weight + queue.nodes[right].weight,
			left:   left,
			right:  right,
		}
		queue.nodes = append(queue.nodes, merged)
		heap.Push(queue, len(queue.nodes)-1)
	}

	tree := &Tree{nodes: queue.nodes, root: heap.Pop(queue).(int)}
	log.Debugf("built tree: %d leaves, %d nodes, root weight %d",
		distinct, len(tree.nodes), tree.nodes[tree.root].weight)
	return tree
}

// Leaves returns the number of leaves in t.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, which is the total of the table t was built from.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Equal reports whether t and other have the same shape, symbols and weights.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}

	type pair struct{ a, b int }
	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		na, nb := t.nodes[p.a], other.nodes[p.b]
		if na.weight != nb.weight || na.leaf() != nb.leaf() {
			return false
		}
		if na.leaf() {
			if na.symbol != nb.symbol {
				return false
			}
			continue
		}
		stack = append(stack, pair{na.right, nb.right}, pair{na.left, nb.left})
	}
	return true
}

func (t *Tree) String() string {
	var parts []string

	codes := DeriveCodes(t)
	for sym := 0; sym < TotalSymbols; sym++ {
		if codes.Has(uint8(sym)) {
			parts = append(parts, fmt.Sprintf("\t%s: %v\n", symbolLabel(sym), codes[sym]))
		}
	}

	return "TREE{\n" + strings.Join(parts, "") + "}"
}
