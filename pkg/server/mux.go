/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"bufio"
	"io"
	"net"

	"github.com/dburkart/abacus/pkg/proto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type MessageMux interface {
	ServeMessage(w io.Writer, msg proto.Message)
	Handle(s string, f HandleMessage)
}

type HandleMessage func(io.Writer, proto.Message)

// unknownCommand is what both muxes fall back to when no handler is
// registered for a command word.
func unknownCommand(w io.Writer, msg proto.Message) {
	rw := proto.NewResponseWriter(w)
	rw.WriteMessage(proto.NewMessageWithType(proto.CommandError, proto.MessageErrorCommandNotFound))
}

// SliceMux indexes handlers by the first byte of the command word. All of
// our command words start with a distinct letter, which makes dispatch a
// single slice lookup.
type SliceMux struct {
	handlers []HandleMessage
}

func NewSliceMux() MessageMux {
	return &SliceMux{
		handlers: make([]HandleMessage, 0, 10),
	}
}

func (m *SliceMux) ServeMessage(w io.Writer, msg proto.Message) {
	cmd := hash(msg.Command)
	if cmd >= len(m.handlers) || m.handlers[cmd] == nil {
		unknownCommand(w, msg)
		return
	}

	m.handlers[cmd](w, msg)
}

func hash(s string) int {
	return int(s[0])
}

func (m *SliceMux) Handle(s string, f HandleMessage) {
	h := hash(s)
	if h >= len(m.handlers) {
		temp := m.handlers
		m.handlers = make([]HandleMessage, h+1, h+1)
		copy(m.handlers, temp)
	}
	m.handlers[h] = f
}

type MapMux struct {
	handlers map[string]HandleMessage
}

func NewMapMux() MessageMux {
	return &MapMux{
		handlers: make(map[string]HandleMessage),
	}
}

func (mm *MapMux) ServeMessage(w io.Writer, msg proto.Message) {
	f, ok := mm.handlers[msg.Command]
	if !ok {
		unknownCommand(w, msg)
		return
	}
	f(w, msg)
}

func (mm *MapMux) Handle(s string, f HandleMessage) {
	mm.handlers[s] = f
}

type MessageServer struct {
	log     zerolog.Logger
	metrics MetricsStore
}

func NewMessageServer(log zerolog.Logger, metrics MetricsStore) MessageServer {
	return MessageServer{
		log,
		metrics,
	}
}

func (ms *MessageServer) ListenAndServe(port int, mux MessageMux) error {
	sock, err := net.ListenTCP("tcp4", &net.TCPAddr{Port: port})
	if err != nil {
		ms.log.Error().Err(err).Int("port", port).Msg("unable to listen on evaluation port")
		return err
	}
	ms.log.Info().Int("evaluation-port", port).Msg("listening for connections")

	for {
		conn, err := sock.AcceptTCP()
		if err != nil {
			ms.log.Error().Err(err).Msg("unable to accept connection on evaluation socket")
			continue
		}

		ms.metrics.IncClientConnection()
		c := newConn(ms.log, mux)
		go c.Handle(conn)
	}
}

type conn struct {
	log zerolog.Logger
	c   *net.TCPConn

	mux MessageMux
}

func newConn(log zerolog.Logger, mux MessageMux) *conn {
	return &conn{
		log: log.With().Str("conn", uuid.NewString()).Logger(),
		mux: mux,
	}
}

func (c *conn) Handle(conn *net.TCPConn) {
	c.c = conn
	defer c.c.Close()

	// Messages are newline framed, so responses have to be written back
	// before the next line is consumed.
	scanner := bufio.NewScanner(c.c)
	for {
		scan := scanner.Scan()
		if !scan {
			if scanner.Err() != nil {
				c.log.Error().Err(scanner.Err()).Msg("error reading from the conn")
				return
			}
			// io.EOF
			c.log.Debug().Msg("connection closed")
			return
		}

		line := scanner.Bytes()
		c.log.Debug().Int("read", len(line)).Msg("read from conn")
		msg, err := proto.ParseMessage(line)
		if err != nil {
			c.log.Error().Err(err).Bytes("buf", line).Msg("error parsing message from buffer")
			rw := proto.NewResponseWriter(c.c)
			rw.WriteMessage(proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling))
			continue
		}
		c.log.Debug().Object("msg", msg).Msg("parsed message")

		c.mux.ServeMessage(c.c, msg)
	}
}
