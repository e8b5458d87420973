/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"io"
)

type ResponseWriter struct {
	w io.Writer
}

func NewResponseWriter(w io.Writer) ResponseWriter {
	return ResponseWriter{
		w: w,
	}
}

func (rw ResponseWriter) Write(b []byte) (int, error) {
	return rw.w.Write(b)
}

// WriteMessage marshals t and writes it out as a single message line.
func (rw ResponseWriter) WriteMessage(t Marshaler) (int, error) {
	b, err := t.Marshal()
	if err != nil {
		return 0, err
	}

	m, err := rw.w.Write(b)
	return m, err
}
