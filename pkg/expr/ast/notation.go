/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import "fmt"

// RPN renders the tree rooted at node in postfix notation.
func RPN(node ASTNode) string {
	switch n := node.(type) {
	case *NumberNode:
		return n.Value()
	case *BinaryOpNode:
		return fmt.Sprintf("%s %s %s", RPN(n.Left), RPN(n.Right), n.Op.Lexeme)
	}

	panic("Unexpected ASTNode passed to RPN")
}

// Lisp renders the tree rooted at node as an s-expression.
func Lisp(node ASTNode) string {
	switch n := node.(type) {
	case *NumberNode:
		return n.Value()
	case *BinaryOpNode:
		return fmt.Sprintf("(%s %s %s)", n.Op.Lexeme, Lisp(n.Left), Lisp(n.Right))
	}

	panic("Unexpected ASTNode passed to Lisp")
}
