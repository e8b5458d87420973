/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Entry is one evaluated expression in the session history.
type Entry struct {
	Expression string
	Value      int64
	Err        error
	At         time.Time
}

// History remembers what was evaluated this session. The zero value is
// ready to use.
type History struct {
	entries []Entry
}

func (h *History) Add(expression string, value int64, err error) {
	h.entries = append(h.entries, Entry{expression, value, err, time.Now()})
}

func (h *History) Len() int {
	return len(h.entries)
}

// Expressions lists everything evaluated so far, oldest first.
func (h *History) Expressions() []string {
	ret := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		ret = append(ret, e.Expression)
	}
	return ret
}

func (h *History) Headers() []string {
	return []string{"#", "expression", "result", "when"}
}

func (h *History) Values() [][]string {
	values := make([][]string, 0, len(h.entries))
	for i, e := range h.entries {
		result := humanize.Comma(e.Value)
		if e.Err != nil {
			result = e.Err.Error()
		}
		values = append(values, []string{
			strconv.Itoa(i + 1),
			e.Expression,
			result,
			humanize.Time(e.At),
		})
	}
	return values
}
