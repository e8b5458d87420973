/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/expr/interp"
	"github.com/dburkart/abacus/pkg/proto"
	"github.com/rs/zerolog"
)

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	version     string
	port        int
	metricsPort int

	session *Session
}

func New(log zerolog.Logger, version string, port, metricsPort int) Server {
	metrics := NewMetricsStore()
	session := NewSession()
	metrics.RegisterCollector(NewSessionStatsCollector(session))

	return Server{
		log,
		metrics,
		version,
		port,
		metricsPort,
		session,
	}
}

// ServeEvaluations answers evaluation requests on the server port. It
// blocks for the lifetime of the server.
func (s *Server) ServeEvaluations() {
	srv := NewMessageServer(s.log, s.metrics)
	mux := NewMapMux()

	mux.Handle(proto.CommandEval, func(w io.Writer, msg proto.Message) {
		rw := proto.NewResponseWriter(w)

		req := proto.EvalRequest{}
		if err := proto.Unmarshal(msg.Data, &req); err != nil {
			s.log.Error().Err(err).Msg("unable to unmarshal eval request")
			rw.WriteMessage(proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling))
			return
		}

		start := time.Now()
		resp, err := EvalResponse(req, s.session)
		elapsed := time.Since(start)

		label := outcome(err)
		s.metrics.IncEvaluations(label)
		s.metrics.ObserveEvaluationNS(label, elapsed.Nanoseconds())

		if err != nil {
			s.log.Debug().Err(err).Str("expression", req.Expression).Msg("evaluation failed")
		}
		rw.WriteMessage(resp)
	})

	mux.Handle(proto.CommandVersion, func(w io.Writer, msg proto.Message) {
		rw := proto.NewResponseWriter(w)

		req := proto.VersionRequest{}
		if err := proto.Unmarshal(msg.Data, &req); err != nil {
			s.log.Error().Err(err).Msg("unable to unmarshal version request")
			rw.WriteMessage(proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling))
			return
		}

		s.log.Debug().Str("client-version", req.Version).Msg("VERSION command")
		rw.WriteMessage(VersionResponse(req, s.version))
	})

	mux.Handle(proto.CommandStats, func(w io.Writer, msg proto.Message) {
		rw := proto.NewResponseWriter(w)
		rw.WriteMessage(StatsResponse(proto.StatsRequest{}, s.session))
	})

	err := srv.ListenAndServe(s.port, mux)
	if err != nil {
		s.log.Error().Err(err).Msg("error listening and serving")
	}
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	http.Handle("/metrics", s.metrics.Handler())
	http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), nil)
}

// outcome maps an evaluation error onto the label recorded with the
// evaluation metrics.
func outcome(err error) string {
	var lexical parse.LexicalError
	var syntax parse.SyntaxError
	var divzero interp.DivisionByZeroError

	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &lexical):
		return "lexical_error"
	case errors.As(err, &syntax):
		return "syntax_error"
	case errors.As(err, &divzero):
		return "division_by_zero"
	default:
		return "error"
	}
}
