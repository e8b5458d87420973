/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"testing"
)

func TestMatchInteger(t *testing.T) {
	s := Scanner{Input: "12345"}
	width := s.MatchInteger()

	if width != 5 {
		t.Errorf("12345 should have width of 5, not %d", width)
	}

	s.Input = "x12"
	width = s.MatchInteger()

	if width != 0 {
		t.Error("x12 should not have a width!")
	}
}

func TestEmitNumber(t *testing.T) {
	s := Scanner{Input: "12345 + 2"}

	tok := s.Emit()

	if tok.Type != TOK_INTEGER {
		t.Error("wanted TOK_INTEGER, got", tok.Type.ToString())
	}

	if tok.Lexeme != "12345" {
		t.Error("wanted 12345, got", tok.Lexeme)
	}

	if tok.Value != 12345 {
		t.Error("wanted a value of 12345, got", tok.Value)
	}
}

func TestEmitOperators(t *testing.T) {
	s := Scanner{Input: "+ - * / ( )"}

	wantTypes := []TokenType{TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_PAREN_L, TOK_PAREN_R}
	wantLexemes := []string{"+", "-", "*", "/", "(", ")"}

	for i := 0; i < len(wantTypes); i++ {
		tok := s.Emit()

		if tok.Type != wantTypes[i] {
			t.Error("wanted", wantTypes[i].ToString(), ", got", tok.Type.ToString())
		}

		if tok.Lexeme != wantLexemes[i] {
			t.Error("wanted", wantLexemes[i], ", got", tok.Lexeme)
		}
	}
}

func TestEmitExpression(t *testing.T) {
	s := Scanner{Input: "(2+3) * 41"}

	wantTypes := []TokenType{TOK_PAREN_L, TOK_INTEGER, TOK_PLUS, TOK_INTEGER,
		TOK_PAREN_R, TOK_STAR, TOK_INTEGER, TOK_EOF}
	wantLexemes := []string{"(", "2", "+", "3", ")", "*", "41", ""}

	for i := 0; i < len(wantTypes); i++ {
		tok := s.Emit()

		if tok.Type != wantTypes[i] {
			t.Error("wanted", wantTypes[i].ToString(), ", got", tok.Type.ToString())
		}

		if tok.Lexeme != wantLexemes[i] {
			t.Errorf("wanted '%s', got '%s'", wantLexemes[i], tok.Lexeme)
		}
	}
}

func TestEmitIgnoresWhitespace(t *testing.T) {
	dense := Scanner{Input: "2+3"}
	spaced := Scanner{Input: "  2 +\t3 "}

	for i := 0; i < 4; i++ {
		want := dense.Emit()
		got := spaced.Emit()

		if got.Type != want.Type {
			t.Error("wanted", want.Type.ToString(), ", got", got.Type.ToString())
		}

		if got.Lexeme != want.Lexeme {
			t.Errorf("wanted '%s', got '%s'", want.Lexeme, got.Lexeme)
		}
	}
}

func TestEmitInvalid(t *testing.T) {
	s := Scanner{Input: "2 # 3"}

	tok := s.Emit()
	if tok.Type != TOK_INTEGER {
		t.Error("wanted TOK_INTEGER, got", tok.Type.ToString())
	}

	tok = s.Emit()
	if tok.Type != TOK_INVALID {
		t.Error("wanted TOK_INVALID, got", tok.Type.ToString())
	}

	if tok.Lexeme != "#" {
		t.Errorf("wanted '#', got '%s'", tok.Lexeme)
	}
}

func TestEmitOverflowedInteger(t *testing.T) {
	// One digit past the largest int64
	s := Scanner{Input: "9223372036854775808"}

	tok := s.Emit()

	if tok.Type != TOK_INVALID {
		t.Error("wanted TOK_INVALID, got", tok.Type.ToString())
	}

	if tok.Lexeme != "9223372036854775808" {
		t.Errorf("wanted the whole run, got '%s'", tok.Lexeme)
	}

	s = Scanner{Input: "9223372036854775807"}

	tok = s.Emit()

	if tok.Type != TOK_INTEGER {
		t.Error("wanted TOK_INTEGER, got", tok.Type.ToString())
	}

	if tok.Value != 9223372036854775807 {
		t.Error("wanted a value of 9223372036854775807, got", tok.Value)
	}
}

func TestEmitEOFIsIdempotent(t *testing.T) {
	s := Scanner{Input: "7 "}

	tok := s.Emit()
	if tok.Type != TOK_INTEGER {
		t.Error("wanted TOK_INTEGER, got", tok.Type.ToString())
	}

	for i := 0; i < 3; i++ {
		tok = s.Emit()

		if tok.Type != TOK_EOF {
			t.Error("wanted TOK_EOF, got", tok.Type.ToString())
		}

		if tok.Location.Start != len(s.Input) {
			t.Error("wanted the end of input, got", tok.Location.Start)
		}
	}
}

func TestRewind(t *testing.T) {
	s := Scanner{Input: "2+3"}

	s.Emit()
	want := s.Emit()
	s.Rewind()
	got := s.Emit()

	if got.Type != want.Type {
		t.Error("wanted", want.Type.ToString(), ", got", got.Type.ToString())
	}

	if got.Location != want.Location {
		t.Error("wanted", want.Location, ", got", got.Location)
	}
}
