package node

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range n.Children() {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node and, after the children of a node, f(nil). Children are skipped
// when f returns false.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Errors returns the error nodes of the tree rooted at n in source order.
func Errors(n Node) (list []*ErrorExpr) {
	Inspect(n, func(n Node) bool {
		if e, ok := n.(*ErrorExpr); ok {
			list = append(list, e)
		}
		return true
	})
	return
}
