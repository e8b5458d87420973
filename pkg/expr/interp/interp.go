/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package interp

import (
	"github.com/dburkart/abacus/pkg/expr/ast"
	"github.com/dburkart/abacus/pkg/expr/scanner"
)

// Interpreter computes the value of an expression tree. Addition,
// subtraction and multiplication wrap on overflow; division truncates
// toward zero.
type Interpreter struct{}

// Interpret evaluates the tree rooted at node, children before parents.
// Errors come back as DivisionByZeroError, InvalidNodeError, or
// MalformedTreeError values.
func (i *Interpreter) Interpret(node ast.ASTNode) (result int64, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch v := e.(type) {
			case DivisionByZeroError:
				err = v
			case InvalidNodeError:
				err = v
			case MalformedTreeError:
				err = v
			default:
				panic(e)
			}
		}
	}()

	result = i.visit(node)
	return
}

func (i *Interpreter) visit(node ast.ASTNode) int64 {
	switch n := node.(type) {
	case *ast.NumberNode:
		return n.Int()
	case *ast.BinaryOpNode:
		if n.Left == nil || n.Right == nil {
			panic(MalformedTreeError{Op: n.Op})
		}

		lh := i.visit(n.Left)
		rh := i.visit(n.Right)

		switch n.Op.Type {
		case scanner.TOK_PLUS:
			return lh + rh
		case scanner.TOK_MINUS:
			return lh - rh
		case scanner.TOK_STAR:
			return lh * rh
		case scanner.TOK_SLASH:
			if rh == 0 {
				panic(NewDivisionByZeroError(n.Op))
			}
			return lh / rh
		}
	}

	panic(InvalidNodeError{Node: node})
}
