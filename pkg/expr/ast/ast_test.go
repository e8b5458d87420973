/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"testing"

	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/google/go-cmp/cmp"
)

// tree returns the expression tree for 2+3*4
func tree() ASTNode {
	num := func(lexeme string, v int64) *NumberNode {
		return MakeNumberNode(parse.Token{Lexeme: lexeme, Value: v})
	}

	mul := &BinaryOpNode{BaseNode: BaseNode{Token: parse.Token{Lexeme: "*"}}}
	mul.Op = mul.Token
	mul.Left = num("3", 3)
	mul.Right = num("4", 4)

	add := &BinaryOpNode{BaseNode: BaseNode{Token: parse.Token{Lexeme: "+"}}}
	add.Op = add.Token
	add.Left = num("2", 2)
	add.Right = mul

	return add
}

func TestDumper(t *testing.T) {
	d := Dumper{}
	Walk(&d, tree())

	want := "BinaryOpNode[+]\n" +
		"    NumberNode[2]\n" +
		"    BinaryOpNode[*]\n" +
		"        NumberNode[3]\n" +
		"        NumberNode[4]\n"

	if diff := cmp.Diff(want, d.Output); diff != "" {
		t.Error(diff)
	}
}

func TestNotation(t *testing.T) {
	root := tree()

	if got := RPN(root); got != "2 3 4 * +" {
		t.Errorf("wanted '2 3 4 * +', got '%s'", got)
	}

	if got := Lisp(root); got != "(+ 2 (* 3 4))" {
		t.Errorf("wanted '(+ 2 (* 3 4))', got '%s'", got)
	}
}

type counter struct {
	nodes int
}

func (c *counter) Visit(node ASTNode) Visitor {
	if node == nil {
		return nil
	}
	c.nodes += 1
	return c
}

func TestWalk(t *testing.T) {
	c := counter{}
	Walk(&c, tree())

	if c.nodes != 5 {
		t.Errorf("wanted 5 nodes, got %d", c.nodes)
	}
}
