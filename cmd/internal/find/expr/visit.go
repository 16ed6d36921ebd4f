package expr

// Walk calls visit on e and every node below it, in pre-order. The
// reference resolver and the traversal engine both walk the same tree
// shape, so they share this visitor instead of duplicating it.
func Walk(e Expr, visit func(Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *Not:
		Walk(n.Inner, visit)
	case *And:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *Or:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	}
}

// References returns the reference paths of every Newer predicate in e, in
// visit order. Duplicates are elided.
func References(e Expr) []string {
	var refs []string
	seen := make(map[string]struct{})
	Walk(e, func(node Expr) {
		if n, ok := node.(*Newer); ok {
			if _, dup := seen[n.Reference]; !dup {
				seen[n.Reference] = struct{}{}
				refs = append(refs, n.Reference)
			}
		}
	})
	return refs
}

// UsesEmpty reports whether e contains an Empty predicate. The walker uses
// this to decide whether a directory listing is needed for emptiness even
// when recursion is cut off.
func UsesEmpty(e Expr) bool {
	found := false
	Walk(e, func(node Expr) {
		if _, ok := node.(*Empty); ok {
			found = true
		}
	})
	return found
}
