package huffman

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman merge tree.
//
// A leaf holds a Symbol and its frequency, and has no children.  An internal
// node has Symbol == InvalidSymbol, exactly two children, and a frequency
// equal to the (saturating) sum of its children's frequencies.
type Node struct {
	Symbol Symbol
	Freq   uint32
	Left   *Node
	Right  *Node

	// seq orders internal nodes by creation when their frequencies tie.
	seq uint32
}

// IsLeaf returns true iff this node carries a symbol.
func (n *Node) IsLeaf() bool {
	return n.Symbol >= 0
}

// Leaves returns the number of leaves in the tree rooted at n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Internals returns the number of internal nodes in the tree rooted at n.
func (n *Node) Internals() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + n.Left.Internals() + n.Right.Internals()
}

// BuildTree builds the Huffman merge tree for the given frequencies.
//
// The two smallest nodes (see the package documentation for the ordering)
// are repeatedly removed and replaced by a parent whose left child is the
// smaller of the two.  An empty table yields a nil tree, and a table with a
// single entry yields a lone leaf.
//
func BuildTree(freqs FrequencyTable) *Node {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	nodes := make([]*Node, 0, len(symbols))
	for _, symbol := range symbols {
		assert.Assertf(symbol >= 0 && symbol <= MaxSymbol, "symbol %d out of range", symbol)
		nodes = append(nodes, &Node{Symbol: symbol, Freq: freqs[symbol]})
	}

	h := nodeHeap{nodes}
	h.Init()

	var nextSeq uint32
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Symbol: InvalidSymbol,
			Freq:   saturatingAdd(a.Freq, b.Freq),
			Left:   a,
			Right:  b,
			seq:    nextSeq,
		})
		nextSeq++
	}

	return heap.Pop(&h).(*Node)
}

// GenerateCodes walks the tree and assigns each leaf the path leading to it,
// '0' for every left branch and '1' for every right branch.
//
// A tree consisting of a lone leaf has no branches at all; its symbol is
// assigned the code "0" so that every encoded symbol still occupies one bit.
//
func GenerateCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	// Only internal nodes are ever pushed onto the stack, so the stack
	// depth is one more than len(path).
	//
	// stackItem.x tracks our progress through the node:
	//   x=0 → We just arrived at the node for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		n *Node
		x byte
	}

	depthHint := log2uint32(uint32(root.Internals()))
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	stackPush := func(n *Node) {
		assert.Assertf(n.Left != nil && n.Right != nil, "internal node with freq %d is missing a child", n.Freq)
		stack = append(stack, stackItem{n: n})
	}

	stackPop := func() {
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]
		if len(stack) != 0 {
			path = path[:len(path)-1]
		}
	}

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if !child.IsLeaf() {
			stackPush(child)
			return
		}
		codes[child.Symbol] = Code(path)
		path = path[:len(path)-1]
	}

	stackPush(root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.Left, '0')
		case 1:
			processChild(top.n.Right, '1')
		case 2:
			stackPop()
		}
	}
	return codes
}

// Decode walks the tree from the root, one bit at a time, emitting a symbol
// each time a leaf is reached.  It reverses Encode for the text the tree was
// built from.
func (n *Node) Decode(bits string) (string, error) {
	var sb strings.Builder
	if n == nil {
		if bits != "" {
			return "", fmt.Errorf("%w: empty tree cannot decode %d bits", ErrUnknownCode, len(bits))
		}
		return "", nil
	}

	cur := n
	for i := 0; i < len(bits); i++ {
		bit := bits[i]
		if n.IsLeaf() {
			if bit != '0' {
				return "", badBit(bits, i)
			}
			sb.WriteRune(rune(n.Symbol))
			continue
		}
		switch bit {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return "", badBit(bits, i)
		}
		if cur.IsLeaf() {
			sb.WriteRune(rune(cur.Symbol))
			cur = n
		}
	}
	if cur != n {
		return "", fmt.Errorf("%w: input ends inside a code", ErrTruncated)
	}
	return sb.String(), nil
}

func badBit(bits string, index int) error {
	if b := bits[index]; b == '0' || b == '1' {
		return fmt.Errorf("%w: %q at offset %d does not start any code", ErrUnknownCode, b, index)
	}
	return fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[index], index)
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
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
	if aLeaf != bLeaf {
		return bLeaf
	}
	if aLeaf {
		return a.Symbol < b.Symbol
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
