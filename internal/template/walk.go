package template

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Tag:
		walkBlock(n.Block, fn)
	case *Block:
		for _, c := range n.Nodes {
			Walk(c, fn)
		}
	case *Case:
		walkBlock(n.Block, fn)
	case *When:
		walkBlock(n.Block, fn)
	case *Conditional:
		walkBlock(n.Consequent, fn)
		if n.Alternate != nil {
			Walk(n.Alternate, fn)
		}
	case *Each:
		walkBlock(n.Block, fn)
		walkBlock(n.Alternate, fn)
	}
}

func walkBlock(b *Block, fn func(Node) bool) {
	if b != nil {
		Walk(b, fn)
	}
}
