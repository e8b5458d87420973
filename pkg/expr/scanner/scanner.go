/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"github.com/dburkart/abacus/pkg/common/parse"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type Scanner struct {
	Input     string
	Start     int
	Pos       int
	LastWidth int
}

// MatchInteger returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	integer          = 1*DIGIT
func (s *Scanner) MatchInteger() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for i := s.Pos; unicode.IsDigit(r); {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// Emit the next Token found on Scanner.Input.
//
// Once the input is exhausted, Emit returns a TOK_EOF token on this and
// every subsequent call. Text the scanner does not recognize comes back
// as a TOK_INVALID token spanning everything up to the next boundary.
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	oldStart := s.Start

	for {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case s.Pos >= len(s.Input):
			t.Type = TOK_EOF
		case unicode.IsSpace(r):
			skip = width
			found = false
		case r == '+':
			t.Type = TOK_PLUS
			skip = width
		case r == '-':
			t.Type = TOK_MINUS
			skip = width
		case r == '*':
			t.Type = TOK_STAR
			skip = width
		case r == '/':
			t.Type = TOK_SLASH
			skip = width
		case r == '(':
			t.Type = TOK_PAREN_L
			skip = width
		case r == ')':
			t.Type = TOK_PAREN_R
			skip = width
		case unicode.IsDigit(r):
			skip = s.MatchInteger()
			v, err := strconv.ParseInt(s.Input[s.Pos:s.Pos+skip], 10, 64)
			if err != nil {
				// Too many digits to fit, mark the whole run
				t.Type = TOK_INVALID
				break
			}
			t.Type = TOK_INTEGER
			t.Value = v
		default:
			t.Type = TOK_INVALID
			skip = s.SkipToBoundary(isDelimiter)
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	s.LastWidth = s.Start - oldStart

	return t
}

// Rewind the last read token
func (s *Scanner) Rewind() {
	s.Start -= s.LastWidth
	s.Pos = s.Start
	s.LastWidth = 0
}

type boundaryFunc func(rune) bool

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' ||
		r == '+' || r == '-' || r == '*' || r == '/'
}

// SkipToBoundary returns the number of bytes until the next delimiter.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for !boundary(r) && s.Pos+size < len(s.Input) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}
