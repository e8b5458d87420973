/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses the tree rooted at node in depth-first order, visiting
// each node before its children. If the visitor returns nil the children
// of node are skipped. Walk signals the end of a node's children by
// calling Visit(nil).
func Walk(v Visitor, node ASTNode) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *NumberNode:
		// Skip, leaf node

	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	default:
		panic("Unexpected ASTNode passed to Walk")
	}

	v.Visit(nil)
}
