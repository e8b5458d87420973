/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/abacus/pkg/common/parse"
)

type ASTNode interface {
	Value() string
}

type Visitor interface {
	Visit(ASTNode) Visitor
}

type (
	BaseNode struct {
		Token parse.Token
	}

	// NumberNode is a leaf holding a single integer literal.
	NumberNode struct {
		BaseNode
		Val int64
	}

	// BinaryOpNode applies Op to the subtrees it owns. Left and Right
	// are always both set on trees produced by the parser.
	BinaryOpNode struct {
		BaseNode
		Left  ASTNode
		Op    parse.Token
		Right ASTNode
	}
)

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

//-- NumberNode

func MakeNumberNode(tok parse.Token) *NumberNode {
	return &NumberNode{BaseNode: BaseNode{Token: tok}, Val: tok.Value}
}

func (n NumberNode) Int() int64 {
	return n.Val
}
