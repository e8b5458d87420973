/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package abacus

import (
	"fmt"

	"github.com/dburkart/abacus/pkg/expr"
	"github.com/dburkart/abacus/pkg/proto"
	"github.com/dburkart/abacus/pkg/server"
)

// A LocalClient evaluates expressions in-process, without a server. It
// answers the same commands a server would, so callers can treat the two
// interchangeably.
type LocalClient struct {
	target  proto.ConnectionString
	session *server.Session
}

func (client *LocalClient) Open(target proto.ConnectionString, _ uint) error {
	client.target = target
	client.session = server.NewSession()
	return nil
}

func (client *LocalClient) Close() error {
	return nil
}

func (client *LocalClient) Send(message proto.Message) (proto.Message, error) {
	switch message.Command {
	case proto.CommandEval:
		var evalReq proto.EvalRequest
		err := proto.Unmarshal(message.Data, &evalReq)
		if err != nil {
			return proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling), nil
		}
		resp, _ := server.EvalResponse(evalReq, client.session)
		return resp, nil
	case proto.CommandVersion:
		var versionReq proto.VersionRequest
		err := proto.Unmarshal(message.Data, &versionReq)
		if err != nil {
			return proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling), nil
		}
		return server.VersionResponse(versionReq, Version), nil
	case proto.CommandStats:
		var statsReq proto.StatsRequest
		err := proto.Unmarshal(message.Data, &statsReq)
		if err != nil {
			return proto.NewMessageWithType(proto.CommandError, proto.MessageErrorUnmarshaling), nil
		}
		return server.StatsResponse(statsReq, client.session), nil
	default:
		return proto.NewMessageWithType(
			proto.CommandError,
			proto.ErrResponse{Code: 404, Err: fmt.Errorf("unknown command: %s", message.Command)},
		), nil
	}
}

// Eval evaluates an expression in-process. Unlike the remote path, errors
// come back with their original types intact, so callers can format them
// against the input.
func (client *LocalClient) Eval(expression string) (int64, error) {
	value, err := expr.Evaluate(expression)
	client.session.RecordEvaluation(err != nil)
	return value, err
}

func (client *LocalClient) ServerVersion() (string, error) {
	versionMsg := proto.NewMessageWithType(proto.CommandVersion,
		proto.VersionRequest{
			Version: Version,
		})

	resp, err := client.Send(versionMsg)
	if err != nil {
		return "", err
	}
	if resp.Command == proto.CommandError {
		return "", responseError(resp)
	}

	version := proto.VersionResponse{}
	if err = version.Unmarshal(resp.Data); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (client *LocalClient) Stats() (proto.StatsResponse, error) {
	statsMsg := proto.NewMessageWithType(proto.CommandStats, proto.StatsRequest{})

	resp, err := client.Send(statsMsg)
	if err != nil {
		return proto.StatsResponse{}, err
	}
	if resp.Command == proto.CommandError {
		return proto.StatsResponse{}, responseError(resp)
	}

	stats := proto.StatsResponse{}
	if err = stats.Unmarshal(resp.Data); err != nil {
		return proto.StatsResponse{}, err
	}

	return stats, nil
}
