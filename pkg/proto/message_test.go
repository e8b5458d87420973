/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"
)

var result Message

func TestParseMessage(t *testing.T) {
	tt := []struct {
		test string
		buf  []byte
		err  bool
	}{
		{
			"Test empty message",
			[]byte("\r\n"),
			true,
		},
		{
			"Test simple message",
			[]byte("EVAL 2+3\n\n\n"),
			false,
		},
		{
			"Test message without payload",
			[]byte("STATS"),
			false,
		},
		{
			"Test lowercase command",
			[]byte("eval 2+3"),
			false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			msg, err := ParseMessage(tc.buf)
			if err != nil && !tc.err {
				t.Error(err)
			}
			if err == nil && tc.err {
				t.Errorf("expected %q to fail", tc.buf)
			}
			if err == nil && msg.Command != strings.ToUpper(msg.Command) {
				t.Errorf("command should be upcased, got %s", msg.Command)
			}
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := NewMessageWithType(CommandEval, EvalRequest{Expression: "2 + 3 * 4"})

	b, err := msg.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	if b[len(b)-1] != '\n' {
		t.Error("marshaled messages should end in a newline")
	}

	parsed, err := ParseMessage(b)
	if err != nil {
		t.Fatal(err)
	}

	if parsed.Command != CommandEval {
		t.Errorf("wanted %s, got %s", CommandEval, parsed.Command)
	}

	req := EvalRequest{}
	if err := Unmarshal(parsed.Data, &req); err != nil {
		t.Fatal(err)
	}

	if req.Expression != "2 + 3 * 4" {
		t.Errorf("wanted '2 + 3 * 4', got '%s'", req.Expression)
	}
}

func TestReadMessageBoundary(t *testing.T) {
	buf := bytes.NewBufferString("EVAL 1+1\nEVAL 2+2\n")

	first, err := ReadMessage(buf)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ReadMessage(buf)
	if err != nil {
		t.Fatal(err)
	}

	if string(first.Data) != "1+1" || string(second.Data) != "2+2" {
		t.Errorf("messages read across the boundary: %q, %q", first.Data, second.Data)
	}
}

func TestStatsResponse(t *testing.T) {
	resp := StatsResponse{Code: 200, Evaluations: 42, Failures: 3, Uptime: 90*time.Minute + 12*time.Second}

	b, _ := resp.Marshal()
	err := resp.Unmarshal(b)
	if err != nil {
		t.Log(err)
		t.Fail()
	}

	if resp.Evaluations != 42 {
		t.Fail()
	}
	if resp.Failures != 3 {
		t.Fail()
	}
	if resp.Uptime != 90*time.Minute+12*time.Second {
		t.Fail()
	}
}

func BenchmarkReadMessage(b *testing.B) {
	buf := new(bytes.Buffer)
	rw := NewResponseWriter(buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rw.WriteMessage(NewMessageWithType(CommandError, MessageErrorCommandNotFound))
		ret, _ := ReadMessage(buf)
		result = ret
	}
}

func BenchmarkReadMessageFull(b *testing.B) {
	buf := new(bytes.Buffer)
	rw := NewResponseWriter(buf)
	reader := bufio.NewReader(buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rw.WriteMessage(NewMessageWithType(CommandError, MessageErrorCommandNotFound))
		ret, _ := ReadMessageFull(reader)
		result = ret
	}
}
