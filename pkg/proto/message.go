/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	MessageError                = ErrResponse{Code: 500}
	MessageErrorUnmarshaling    = ErrResponse{Code: 506, Err: errors.New("unable to unmarshal request")}
	MessageErrorCommandNotFound = ErrResponse{Code: 505, Err: errors.New("command not found")}
)

// Message is a single line on the wire: a command word, optionally
// followed by one space and a payload.
type Message struct {
	Command string
	Data    []byte
}

func NewMessage(command string, data []byte) Message {
	return Message{Command: command, Data: data}
}

// NewMessageWithType wraps a marshaled payload in a Message. Our payload
// types marshal infallibly, so any error here is a programming mistake.
func NewMessageWithType(command string, t Marshaler) Message {
	data, err := t.Marshal()
	if err != nil {
		panic(err)
	}
	return Message{Command: command, Data: data}
}

// ParseMessage parses a single message line. The command word is
// upcased, so commands are case-insensitive on the wire.
func ParseMessage(b []byte) (Message, error) {
	ret := Message{}

	b = bytes.TrimRight(b, "\r\n")
	if len(b) == 0 {
		return ret, fmt.Errorf("malformed message")
	}

	ind := bytes.IndexByte(b, ' ')
	if ind == -1 {
		ret.Command = strings.ToUpper(string(b))
		return ret, nil
	}

	ret.Command = strings.ToUpper(string(b[0:ind]))
	ret.Data = b[ind+1:]

	return ret, nil
}

// ReadMessage reads one newline-terminated message from r. It consumes
// the stream one byte at a time, so the reader position is left exactly
// on the message boundary.
func ReadMessage(r io.Reader) (Message, error) {
	line := []byte{}
	b := make([]byte, 1)

	for {
		_, err := r.Read(b)
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				break
			}
			return Message{}, err
		}
		if b[0] == '\n' {
			break
		}
		line = append(line, b[0])
	}

	return ParseMessage(line)
}

// ReadMessageFull reads one message from a buffered reader. Prefer this
// over ReadMessage when the reader owns the connection.
func ReadMessageFull(r *bufio.Reader) (Message, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return Message{}, err
	}

	return ParseMessage(line)
}

func (m Message) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(m.Command)
	if len(m.Data) > 0 {
		buf.WriteByte(' ')
		buf.Write(m.Data)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (m Message) MarshalZerologObject(e *zerolog.Event) {
	e.Str("command", m.Command).Bytes("data", m.Data)
}

func Marshal(t Marshaler) ([]byte, error) {
	return t.Marshal()
}

func Unmarshal(b []byte, t Unmarshaler) error {
	return t.Unmarshal(b)
}

type Marshaler interface {
	Marshal() ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Printable is implemented by payloads the REPL can render as a table.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type (
	ErrResponse struct {
		Code uint32
		Err  error
	}

	ResultResponse struct {
		Code  uint32
		Value int64
	}

	VersionRequest struct {
		Version string
	}

	VersionResponse struct {
		Code    uint32
		Version string
	}

	EvalRequest struct {
		Expression string
	}

	StatsRequest struct{}

	StatsResponse struct {
		Code        uint32
		Evaluations uint64
		Failures    uint64
		Uptime      time.Duration
	}
)

// EvalRequest
// --------------------------

func (rq EvalRequest) Marshal() ([]byte, error) {
	return []byte(rq.Expression), nil
}

func (rq *EvalRequest) Unmarshal(b []byte) error {
	rq.Expression = string(b)
	return nil
}

// ErrResponse
// --------------------------

func (rq ErrResponse) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%d ", rq.Code)
	if rq.Err != nil {
		buf.WriteString(rq.Err.Error())
	} else {
		buf.WriteString("error")
	}
	return buf.Bytes(), nil
}

func (rq *ErrResponse) Unmarshal(b []byte) error {
	ind := bytes.IndexByte(b, ' ')
	if ind == -1 {
		return fmt.Errorf("malformed error response")
	}

	code, err := strconv.ParseUint(string(b[:ind]), 10, 32)
	if err != nil {
		return err
	}

	rq.Code = uint32(code)
	rq.Err = errors.New(string(b[ind+1:]))

	return nil
}

func (rq ErrResponse) Headers() []string {
	return []string{"code", "error"}
}

func (rq ErrResponse) Values() [][]string {
	message := "error"
	if rq.Err != nil {
		message = rq.Err.Error()
	}
	return [][]string{{strconv.FormatUint(uint64(rq.Code), 10), message}}
}

// ResultResponse
// --------------------------

func (rq ResultResponse) Marshal() ([]byte, error) {
	return []byte(fmt.Sprintf("%d %d", rq.Code, rq.Value)), nil
}

func (rq *ResultResponse) Unmarshal(b []byte) error {
	_, err := fmt.Sscanf(string(b), "%d %d", &rq.Code, &rq.Value)
	return err
}

func (rq ResultResponse) Headers() []string {
	return []string{"result"}
}

func (rq ResultResponse) Values() [][]string {
	return [][]string{{strconv.FormatInt(rq.Value, 10)}}
}

// VersionRequest
// --------------------------

func (rq VersionRequest) Marshal() ([]byte, error) {
	return []byte(rq.Version), nil
}

func (rq *VersionRequest) Unmarshal(b []byte) error {
	rq.Version = string(b)
	return nil
}

// VersionResponse
// --------------------------

func (rq VersionResponse) Marshal() ([]byte, error) {
	return []byte(fmt.Sprintf("%d %s", rq.Code, rq.Version)), nil
}

func (rq *VersionResponse) Unmarshal(b []byte) error {
	_, err := fmt.Sscanf(string(b), "%d %s", &rq.Code, &rq.Version)
	return err
}

func (rq VersionResponse) Headers() []string {
	return []string{"version"}
}

func (rq VersionResponse) Values() [][]string {
	return [][]string{{rq.Version}}
}

// StatsRequest
// --------------------------

func (rq StatsRequest) Marshal() ([]byte, error) {
	return []byte{}, nil
}

func (rq *StatsRequest) Unmarshal(b []byte) error {
	return nil
}

// StatsResponse
// --------------------------

func (rq StatsResponse) Marshal() ([]byte, error) {
	return []byte(fmt.Sprintf("%d %d %d %s", rq.Code, rq.Evaluations, rq.Failures, rq.Uptime)), nil
}

func (rq *StatsResponse) Unmarshal(b []byte) error {
	var uptime string
	_, err := fmt.Sscanf(string(b), "%d %d %d %s", &rq.Code, &rq.Evaluations, &rq.Failures, &uptime)
	if err != nil {
		return err
	}

	rq.Uptime, err = time.ParseDuration(uptime)
	return err
}

func (rq StatsResponse) Headers() []string {
	return []string{"evaluations", "failures", "uptime"}
}

func (rq StatsResponse) Values() [][]string {
	return [][]string{{
		strconv.FormatUint(rq.Evaluations, 10),
		strconv.FormatUint(rq.Failures, 10),
		rq.Uptime.String(),
	}}
}
