package treemap

type node[K comparable, V any] struct {
	entry[K, V]
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
}

func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, nil past the maximum.
func (n *node[K, V]) next() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// prev returns the in-order predecessor of n, nil before the minimum.
func (n *node[K, V]) prev() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

func (n *node[K, V]) sever() {
	n.parent = nil
	n.left = nil
	n.right = nil
}

type entry[K comparable, V any] struct {
	key   K
	value V
}
