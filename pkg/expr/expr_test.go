/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/expr/interp"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "7", want: 7},
		{input: "2+3", want: 5},
		{input: "2+3*4", want: 14},
		{input: "(2+3)*4", want: 20},
		{input: "7-2-3", want: 2},
		{input: " 2 +\t3 ", want: 5},
	}

	for _, test := range tests {
		got, err := Evaluate(test.input)
		if err != nil {
			t.Error(err)
			continue
		}

		if got != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, got)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	var lexical parse.LexicalError
	var syntax parse.SyntaxError
	var divide interp.DivisionByZeroError

	if _, err := Evaluate("2#3"); !errors.As(err, &lexical) {
		t.Errorf("want a lexical error, got %v", err)
	}

	if _, err := Evaluate("2+"); !errors.As(err, &syntax) {
		t.Errorf("want a syntax error, got %v", err)
	}

	if _, err := Evaluate("(2+3"); !errors.As(err, &syntax) {
		t.Errorf("want a syntax error, got %v", err)
	}

	if _, err := Evaluate("10/0"); !errors.As(err, &divide) {
		t.Errorf("want a division by zero, got %v", err)
	}
}

func TestEvaluateDeepNesting(t *testing.T) {
	depth := 128
	input := strings.Repeat("(", depth) + "7" + strings.Repeat(")", depth)

	got, err := Evaluate(input)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Error("wanted 7, got", got)
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	input := "(2+3)*4-1"

	first, err := Evaluate(input)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Evaluate(input)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("want %d on the second evaluation, got %d", first, second)
	}
}

var result int64

func BenchmarkEvaluate(b *testing.B) {
	var r int64
	for i := 0; i < b.N; i++ {
		r, _ = Evaluate("7 + 3 * (10 / (12 / (3 + 1) - 1))")
	}
	result = r
}
