package ast

import "iter"

// Walk traverses the tree rooted at n in depth-first source order, calling
// visit for each node. If visit returns false the node's children are
// skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			Walk(child, visit)
		}
	}
}

// All returns an iterator over every node of the tree rooted at n in
// depth-first source order. Breaking out of the range stops the traversal.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkAll(n, yield)
	}
}

func walkAll(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			if !walkAll(child, yield) {
				return false
			}
		}
	}
	return true
}

// NodesAtPosition returns the chain of nodes covering pos, ordered from
// the outermost container to the innermost statement. A position exactly at
// a node's end counts as inside it so that a cursor just behind the last
// character still hits the node.
func NodesAtPosition(n Node, pos Position) []Node {
	var chain []Node
	Walk(n, func(node Node) bool {
		r := node.Range()
		if r.IsZero() {
			// Zero-width containers still get searched; their children
			// carry the spans.
			_, container := node.(Container)
			return container
		}
		if !r.Contains(pos) && pos != r.End {
			return false
		}
		chain = append(chain, node)
		return true
	})
	return chain
}

// TokensAtPosition returns the statement's tokens covering pos, in source
// order. A position exactly at a token's end counts as inside it.
func TokensAtPosition(s *Statement, pos Position) []Token {
	var out []Token
	for _, tok := range s.Tokens() {
		r := tok.Range()
		if r.Contains(pos) || pos == r.End {
			out = append(out, tok)
		}
	}
	return out
}
