/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// InputError is implemented by errors which point at a span of the input
// they were produced from. FormatError renders the input with a caret
// marking that span.
type InputError interface {
	error
	FormatError(input string) string
}

type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

func (s SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", s.Message)
}

func (s SyntaxError) FormatError(input string) string {
	return Annotate(input, s.Location, "Syntax error found in expression:", s.Message)
}

type LexicalError struct {
	Location Location
	Message  string
}

func NewLexicalError(t Token, m string) LexicalError {
	return LexicalError{Location: t.Location, Message: m}
}

func (l LexicalError) Error() string {
	return fmt.Sprintf("lexical error: %s", l.Message)
}

func (l LexicalError) FormatError(input string) string {
	return Annotate(input, l.Location, "Lexical error found in expression:", l.Message)
}

// Annotate renders input with a caret line underneath, pointing at loc.
func Annotate(input string, loc Location, heading, message string) string {
	repeat := loc.End - loc.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := heading + "\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", loc.Start), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}
