/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/abacus/pkg/expr"
	"github.com/dburkart/abacus/pkg/proto"
)

// EvalResponse evaluates the requested expression and builds the reply
// message. The evaluation error is returned alongside the message so
// callers can record the outcome.
func EvalResponse(req proto.EvalRequest, session *Session) (proto.Message, error) {
	value, err := expr.Evaluate(req.Expression)
	session.RecordEvaluation(err != nil)

	if err != nil {
		return proto.NewMessageWithType(proto.CommandError, proto.ErrResponse{Code: 400, Err: err}), err
	}

	return proto.NewMessageWithType(proto.CommandResult, proto.ResultResponse{Code: 200, Value: value}), nil
}

func VersionResponse(_ proto.VersionRequest, version string) proto.Message {
	// We don't currently reject any client versions, so respond with our
	// own version announcement and an OK code.
	return proto.NewMessageWithType(proto.CommandVersion, proto.VersionResponse{Code: 200, Version: version})
}

func StatsResponse(_ proto.StatsRequest, session *Session) proto.Message {
	stats := session.Stats()
	return proto.NewMessageWithType(proto.CommandStats, proto.StatsResponse{
		Code:        200,
		Evaluations: stats.Evaluations,
		Failures:    stats.Failures,
		Uptime:      stats.Uptime,
	})
}
