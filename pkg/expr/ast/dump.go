/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strings"
)

// Dumper is a Visitor which renders the tree as one indented line per
// node, for inspection from the REPL and in tests.
type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node ASTNode) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + node.Value() + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}
