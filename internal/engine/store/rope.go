package store

// MaxLeafLen is the maximum number of bytes held by a rope leaf.
const MaxLeafLen = 8

// ropeNode is a rope tree node. Leaves hold data and have no children.
// For an internal node, weight is the total length of its left subtree;
// for a leaf it equals len(data).
type ropeNode struct {
	weight int
	height int
	data   []byte
	left   *ropeNode
	right  *ropeNode
}

func (n *ropeNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// total returns the length of the subtree by walking the right spine.
func (n *ropeNode) total() int {
	length := 0
	for n != nil {
		length += n.weight
		if n.isLeaf() {
			break
		}
		n = n.right
	}
	return length
}

func newLeaf(data []byte) *ropeNode {
	return &ropeNode{weight: len(data), height: 1, data: data}
}

// build creates a balanced tree from s by halving until pieces fit a leaf.
func build(s []byte) *ropeNode {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxLeafLen {
		data := make([]byte, len(s))
		copy(data, s)
		return newLeaf(data)
	}
	m := len(s) / 2
	return concat(build(s[:m]), build(s[m:]))
}

// concat joins two trees under a new internal node.
func concat(left, right *ropeNode) *ropeNode {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return &ropeNode{
		weight: left.total(),
		height: 1 + max(left.height, right.height),
		left:   left,
		right:  right,
	}
}

// split partitions n at index by re-linking subtrees. Only a leaf that
// straddles index is cut, and its halves share the original backing array.
func split(n *ropeNode, index int) (*ropeNode, *ropeNode) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		switch {
		case index <= 0:
			return nil, n
		case index >= len(n.data):
			return n, nil
		default:
			return newLeaf(n.data[:index:index]), newLeaf(n.data[index:])
		}
	}
	switch {
	case index < n.weight:
		l, r := split(n.left, index)
		return l, concat(r, n.right)
	case index > n.weight:
		l, r := split(n.right, index-n.weight)
		return concat(n.left, l), r
	default:
		return n.left, n.right
	}
}

// Rope stores text in a binary tree of bounded leaves.
type Rope struct {
	root *ropeNode

	// Result of the last Seek, dropped on every mutation.
	seekLeaf  *ropeNode
	seekStart int
}

// NewRope creates a balanced rope holding a copy of content.
func NewRope(content []byte) *Rope {
	return &Rope{root: build(content)}
}

// Len returns the number of bytes held.
func (r *Rope) Len() int {
	return r.root.total()
}

// Depth returns the height of the tree (0 for an empty rope).
func (r *Rope) Depth() int {
	if r.root == nil {
		return 0
	}
	return r.root.height
}

// Seek descends to the leaf holding index and remembers it for ByteAt.
func (r *Rope) Seek(index int) error {
	if err := checkIndex("seek", index, r.Len()); err != nil {
		return err
	}
	r.seekLeaf, r.seekStart = nil, 0
	if r.root == nil {
		return nil
	}
	n, start := r.root, 0
	for !n.isLeaf() {
		if index-start < n.weight {
			n = n.left
		} else {
			start += n.weight
			n = n.right
		}
	}
	r.seekLeaf, r.seekStart = n, start
	return nil
}

// ByteAt returns the byte at index in O(depth).
func (r *Rope) ByteAt(index int) (byte, error) {
	if index < 0 || index >= r.Len() {
		return 0, outOfRange("byte at", index, r.Len())
	}
	if leaf := r.seekLeaf; leaf != nil && index >= r.seekStart && index < r.seekStart+len(leaf.data) {
		return leaf.data[index-r.seekStart], nil
	}
	n := r.root
	for !n.isLeaf() {
		if index < n.weight {
			n = n.left
		} else {
			index -= n.weight
			n = n.right
		}
	}
	return n.data[index], nil
}

// Insert inserts ch before index. A leaf with spare room is rewritten in
// place along the search path; otherwise the tree is split at index and a
// new leaf is concatenated between the halves.
func (r *Rope) Insert(index int, ch byte) error {
	if err := checkIndex("insert", index, r.Len()); err != nil {
		return err
	}
	r.seekLeaf = nil
	if r.root == nil {
		r.root = newLeaf([]byte{ch})
		return nil
	}

	var path []*ropeNode
	n, off := r.root, index
	for !n.isLeaf() {
		if off <= n.weight {
			path = append(path, n)
			n = n.left
		} else {
			off -= n.weight
			n = n.right
		}
	}
	if len(n.data) < MaxLeafLen {
		data := make([]byte, len(n.data)+1)
		copy(data, n.data[:off])
		data[off] = ch
		copy(data[off+1:], n.data[off:])
		n.data = data
		n.weight = len(data)
		for _, p := range path {
			p.weight++
		}
		return nil
	}

	l, rest := split(r.root, index)
	r.root = concat(concat(l, newLeaf([]byte{ch})), rest)
	r.rebalance()
	return nil
}

// InsertBytes inserts chars before index.
func (r *Rope) InsertBytes(index int, chars []byte) error {
	if err := checkIndex("insert", index, r.Len()); err != nil {
		return err
	}
	if len(chars) == 0 {
		return nil
	}
	r.seekLeaf = nil
	l, rest := split(r.root, index)
	r.root = concat(concat(l, build(chars)), rest)
	r.rebalance()
	return nil
}

// Delete removes the byte before index.
func (r *Rope) Delete(index int) error {
	if err := checkIndex("delete", index, r.Len()); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	r.seekLeaf = nil
	pos := index - 1

	var path []*ropeNode
	n, off := r.root, pos
	for !n.isLeaf() {
		if off < n.weight {
			path = append(path, n)
			n = n.left
		} else {
			off -= n.weight
			n = n.right
		}
	}
	if len(n.data) > 1 {
		data := make([]byte, len(n.data)-1)
		copy(data, n.data[:off])
		copy(data[off:], n.data[off+1:])
		n.data = data
		n.weight = len(data)
		for _, p := range path {
			p.weight--
		}
		return nil
	}

	l, rest := split(r.root, pos)
	_, rest = split(rest, 1)
	r.root = concat(l, rest)
	r.rebalance()
	return nil
}

// Split truncates the rope to [0, index) and returns the rest as a new rope.
func (r *Rope) Split(index int) (Store, error) {
	if err := checkIndex("split", index, r.Len()); err != nil {
		return nil, err
	}
	r.seekLeaf = nil
	l, rest := split(r.root, index)
	r.root = l
	r.rebalance()
	tail := &Rope{root: rest}
	tail.rebalance()
	return tail, nil
}

// Append concatenates a freshly built tree of other's content.
// Nodes are never shared between ropes.
func (r *Rope) Append(other Store) error {
	if other == nil || other.Len() == 0 {
		return nil
	}
	r.seekLeaf = nil
	r.root = concat(r.root, build(other.Bytes()))
	r.rebalance()
	return nil
}

// Bytes materializes the rope with an iterative in-order walk.
func (r *Rope) Bytes() []byte {
	out := make([]byte, 0, r.Len())
	var stack []*ropeNode
	n := r.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf() {
			out = append(out, n.data...)
		}
		n = n.right
	}
	return out
}

// Leaves returns the number of leaves.
func (r *Rope) Leaves() int {
	count := 0
	r.walk(func(n *ropeNode) {
		if n.isLeaf() {
			count++
		}
	})
	return count
}

// Release drops every node, the root included, in post-order.
func (r *Rope) Release() {
	r.walk(func(n *ropeNode) {
		n.left, n.right, n.data = nil, nil, nil
	})
	r.root = nil
	r.seekLeaf = nil
}

// walk visits every node in post-order using an explicit stack.
func (r *Rope) walk(visit func(*ropeNode)) {
	if r.root == nil {
		return
	}
	type frame struct {
		node     *ropeNode
		expanded bool
	}
	stack := []frame{{node: r.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded || top.node.isLeaf() {
			stack = stack[:len(stack)-1]
			visit(top.node)
			continue
		}
		top.expanded = true
		n := top.node
		if n.right != nil {
			stack = append(stack, frame{node: n.right})
		}
		if n.left != nil {
			stack = append(stack, frame{node: n.left})
		}
	}
}

// rebalance rebuilds the tree when its height exceeds the bound for its size.
func (r *Rope) rebalance() {
	if r.root == nil || r.root.height <= maxDepth(r.root.total()) {
		return
	}
	r.root = build(r.Bytes())
}

// maxDepth returns the tolerated height for a rope of the given length.
func maxDepth(length int) int {
	leaves := (length + MaxLeafLen - 1) / MaxLeafLen
	depth := 0
	for n := 1; n < leaves; n *= 2 {
		depth++
	}
	return 2*depth + 4
}
