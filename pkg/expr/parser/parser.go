/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"
	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/expr/ast"
	"github.com/dburkart/abacus/pkg/expr/scanner"
	"unicode"
)

type Parser struct {
	Scanner scanner.Scanner
}

// Parse consumes the whole of Scanner.Input and returns the root of the
// expression tree. Errors come back as parse.LexicalError or
// parse.SyntaxError values.
func (p *Parser) Parse() (root ast.ASTNode, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch v := e.(type) {
			case parse.SyntaxError:
				err = v
			case parse.LexicalError:
				err = v
			default:
				panic(e)
			}
		}
	}()

	root = p.expression()

	// Valid input followed by anything other than the end of input is
	// not a valid expression
	tok := p.emit()
	if tok.Type != scanner.TOK_EOF {
		panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: Unexpected %s after expression", describe(tok))))
	}

	return
}

// expression returns a BinaryOpNode, or the result of term
//
// Grammar:
//
//	expression      = term *( ( "+" / "-" ) term )
func (p *Parser) expression() ast.ASTNode {
	node := p.term()

	for {
		tok := p.emit()
		if tok.Type != scanner.TOK_PLUS && tok.Type != scanner.TOK_MINUS {
			p.Scanner.Rewind()
			break
		}

		// Fold the tree leftwards, so that 7-2-3 computes (7-2)-3
		op := ast.BinaryOpNode{BaseNode: ast.BaseNode{Token: tok}}
		op.Op = tok
		op.Left = node
		op.Right = p.term()
		node = &op
	}

	return node
}

// term returns a BinaryOpNode, or the result of factor
//
// Grammar:
//
//	term            = factor *( ( "*" / "/" ) factor )
func (p *Parser) term() ast.ASTNode {
	node := p.factor()

	for {
		tok := p.emit()
		if tok.Type != scanner.TOK_STAR && tok.Type != scanner.TOK_SLASH {
			p.Scanner.Rewind()
			break
		}

		op := ast.BinaryOpNode{BaseNode: ast.BaseNode{Token: tok}}
		op.Op = tok
		op.Left = node
		op.Right = p.factor()
		node = &op
	}

	return node
}

// factor returns a leaf node for an expression
//
// Grammar:
//
//	factor          = integer / "(" expression ")"
func (p *Parser) factor() ast.ASTNode {
	tok := p.emit()

	switch tok.Type {
	case scanner.TOK_INTEGER:
		return ast.MakeNumberNode(tok)
	case scanner.TOK_PAREN_L:
		// We're an expression group, so call expression
		expr := p.expression()

		// Expect a closing paren
		tok = p.emit()
		if tok.Type != scanner.TOK_PAREN_R {
			panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: Unexpected %s. Expected a ')'", describe(tok))))
		}

		return expr
	}

	panic(parse.NewSyntaxError(tok, fmt.Sprintf("Error: Unexpected %s. Expected an integer or '('", describe(tok))))
}

// emit pulls the next token off the scanner, converting invalid tokens
// into lexical errors.
func (p *Parser) emit() parse.Token {
	tok := p.Scanner.Emit()
	if tok.Type == scanner.TOK_INVALID {
		panic(lexicalError(tok))
	}
	return tok
}

func lexicalError(tok parse.Token) parse.LexicalError {
	for _, r := range tok.Lexeme {
		if !unicode.IsDigit(r) {
			return parse.NewLexicalError(tok, fmt.Sprintf("Error: Unrecognized character '%c'", r))
		}
	}
	return parse.NewLexicalError(tok, fmt.Sprintf("Error: Integer '%s' is too large", tok.Lexeme))
}

func describe(tok parse.Token) string {
	if tok.Type == scanner.TOK_EOF {
		return "end of input"
	}
	return fmt.Sprintf("token '%s'", tok.Lexeme)
}
