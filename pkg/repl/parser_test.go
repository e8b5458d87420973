/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"testing"
)

func TestParseREPLCommand(t *testing.T) {
	t.Run("expression", func(t *testing.T) {
		directive, arg, err := ParseREPLCommand([]byte("2+3*4"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveEval {
			t.Fail()
		}
		if arg != "2+3*4" {
			t.Fail()
		}
	})
	t.Run("ast", func(t *testing.T) {
		directive, arg, err := ParseREPLCommand([]byte(":ast (2+3)*4"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveAST {
			t.Fail()
		}
		if arg != "(2+3)*4" {
			t.Fail()
		}
	})
	t.Run("ast uppercase", func(t *testing.T) {
		directive, _, err := ParseREPLCommand([]byte(":AST 2"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveAST {
			t.Fail()
		}
	})
	t.Run("rpn", func(t *testing.T) {
		directive, arg, err := ParseREPLCommand([]byte(":rpn 2+3"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveRPN {
			t.Fail()
		}
		if arg != "2+3" {
			t.Fail()
		}
	})
	t.Run("history", func(t *testing.T) {
		directive, _, err := ParseREPLCommand([]byte(":history"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveHistory {
			t.Fail()
		}
	})
	t.Run("quit short", func(t *testing.T) {
		directive, _, err := ParseREPLCommand([]byte(":q"))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveQuit {
			t.Fail()
		}
	})
	t.Run("unknown directive", func(t *testing.T) {
		_, _, err := ParseREPLCommand([]byte(":bogus"))
		if err == nil {
			t.Fail()
		}
	})
	t.Run("empty line", func(t *testing.T) {
		directive, arg, err := ParseREPLCommand([]byte("   "))
		if err != nil {
			t.Fail()
		}
		if directive != DirectiveEval {
			t.Fail()
		}
		if arg != "" {
			t.Fail()
		}
	})
}
