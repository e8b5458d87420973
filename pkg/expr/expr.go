/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package expr evaluates integer arithmetic. Input is scanned into
// tokens, parsed into an expression tree, and the tree is folded into a
// single int64.
package expr

import (
	"github.com/dburkart/abacus/pkg/expr/ast"
	"github.com/dburkart/abacus/pkg/expr/interp"
	"github.com/dburkart/abacus/pkg/expr/parser"
	"github.com/dburkart/abacus/pkg/expr/scanner"
)

// Parse returns the expression tree for input without evaluating it.
func Parse(input string) (ast.ASTNode, error) {
	p := parser.Parser{
		Scanner: scanner.Scanner{
			Input: input,
		},
	}

	return p.Parse()
}

// Evaluate computes the value of input. The first failure in any stage
// aborts the evaluation and is returned as a parse.LexicalError,
// parse.SyntaxError, or interp.DivisionByZeroError.
func Evaluate(input string) (int64, error) {
	root, err := Parse(input)
	if err != nil {
		return 0, err
	}

	i := interp.Interpreter{}
	return i.Interpret(root)
}
