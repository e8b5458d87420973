/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"fmt"
	"strings"
)

type Directive int

const (
	// DirectiveEval evaluates the line as an expression
	DirectiveEval Directive = iota
	// DirectiveAST prints the syntax tree of the argument
	DirectiveAST
	// DirectiveRPN prints the argument in reverse polish notation
	DirectiveRPN
	// DirectiveLisp prints the argument as an s-expression
	DirectiveLisp
	// DirectiveHistory lists what has been evaluated this session
	DirectiveHistory
	// DirectiveStats prints session counters
	DirectiveStats
	// DirectiveHelp lists the available directives
	DirectiveHelp
	// DirectiveQuit exits the REPL
	DirectiveQuit
)

// ParseREPLCommand parses input from the command line. A line starting
// with ':' selects a directive, anything else evaluates as an expression.
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Directive, string, error) {
	line := bytes.TrimSpace(b)
	if len(line) == 0 || line[0] != ':' {
		return DirectiveEval, string(line), nil
	}

	// directives taking an argument have a space after them, if not then
	// they are directive only like :quit
	cmd := line
	arg := []byte{}
	ind := bytes.IndexByte(line, ' ')
	if ind != -1 {
		cmd = line[0:ind]
		arg = bytes.TrimSpace(line[ind+1:])
	}

	switch strings.ToLower(string(cmd)) {
	case ":ast":
		return DirectiveAST, string(arg), nil
	case ":rpn":
		return DirectiveRPN, string(arg), nil
	case ":lisp":
		return DirectiveLisp, string(arg), nil
	case ":history":
		return DirectiveHistory, "", nil
	case ":stats":
		return DirectiveStats, "", nil
	case ":help", ":h":
		return DirectiveHelp, "", nil
	case ":quit", ":q":
		return DirectiveQuit, "", nil
	default:
		return DirectiveEval, "", fmt.Errorf("unknown directive: %s", cmd)
	}
}
