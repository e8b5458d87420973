/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package interp

import (
	"fmt"
	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/expr/ast"
)

// DivisionByZeroError marks the slash whose right-hand side evaluated
// to zero.
type DivisionByZeroError struct {
	Location parse.Location
}

func NewDivisionByZeroError(t parse.Token) DivisionByZeroError {
	return DivisionByZeroError{Location: t.Location}
}

func (d DivisionByZeroError) Error() string {
	return "division by zero"
}

func (d DivisionByZeroError) FormatError(input string) string {
	return parse.Annotate(input, d.Location, "Evaluation error found in expression:", "Error: Division by zero")
}

// InvalidNodeError is returned for nodes the interpreter has no rule
// for. The parser never produces such nodes, but hand-built trees can.
type InvalidNodeError struct {
	Node ast.ASTNode
}

func (i InvalidNodeError) Error() string {
	if i.Node == nil {
		return "invalid node in expression tree: <nil>"
	}
	return fmt.Sprintf("invalid node in expression tree: %T[%s]", i.Node, i.Node.Value())
}

// MalformedTreeError is returned when an operator node is missing one
// of its operands. Like InvalidNodeError, it only occurs on trees built
// by hand.
type MalformedTreeError struct {
	Op parse.Token
}

func (m MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed expression tree: operator '%s' is missing an operand", m.Op.Lexeme)
}
