/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package abacus

import (
	"io"
	"math"
	"net"
	"syscall"
	"time"

	"github.com/dburkart/abacus/pkg/proto"
	"github.com/pkg/errors"
)

// A RemoteClient holds the connections needed to talk to an abacus server.
type RemoteClient struct {
	target proto.ConnectionString
	conn   chan net.Conn
}

func connect(c net.Conn) (proto.VersionResponse, error) {
	// First, send a version advertisement
	versionMsg := proto.NewMessageWithType(proto.CommandVersion, proto.VersionRequest{Version: Version})
	b, _ := versionMsg.Marshal()
	c.Write(b)
	m, err := proto.ReadMessage(c)
	if err != nil {
		return proto.VersionResponse{}, errors.Wrap(err, "unable to parse server version response")
	}
	version := proto.VersionResponse{}
	err = version.Unmarshal(m.Data)
	if err != nil {
		return proto.VersionResponse{}, errors.Wrap(err, "unable to unmarshal version response")
	}
	if version.Code != 200 {
		return proto.VersionResponse{}, errors.New("server rejected client version")
	}
	// We don't have any version logic yet

	return version, nil
}

func (client *RemoteClient) reconnectWithBackoff() (net.Conn, error) {
	var conn net.Conn
	var err error

	// Try for a total of 6 seconds
	for i := 0; i < 3; i++ {
		delay := time.Duration(math.Exp2(float64(i)))
		time.Sleep(delay * time.Second)
		conn, err = net.Dial("tcp4", client.target.Address)

		if err == nil {
			_, err = connect(conn)
			if err != nil {
				conn.Close()
				continue
			}
			break
		}
	}

	return conn, err
}

func (client *RemoteClient) Open(connectionString proto.ConnectionString, size uint) error {
	client.target = connectionString
	client.conn = make(chan net.Conn, size)

	for i := uint(0); i < size; i++ {
		c, err := net.Dial("tcp4", client.target.Address)
		if err != nil {
			return err
		}
		_, err = connect(c)
		if err != nil {
			return err
		}
		client.conn <- c
	}

	return nil
}

func (client *RemoteClient) Close() error {
	for i := 0; i < len(client.conn); i++ {
		conn := <-client.conn
		err := conn.Close()
		if err != nil {
			return err
		}
	}
	client.conn = nil
	return nil
}

// Send a general message to the abacus server.
func (client *RemoteClient) Send(m proto.Message) (proto.Message, error) {
	data, err := m.Marshal()
	if err != nil {
		return proto.Message{}, err
	}

	conn := <-client.conn
	defer func() {
		client.conn <- conn
	}()

retry:
	_, err = conn.Write(data)
	if err != nil {
		// Handle peer reset with reconnect logic
		if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
			conn, err = client.reconnectWithBackoff()
			if err != nil {
				return proto.Message{}, err
			}
			// We use a goto here because we need to retry sending our message,
			// however, if we recursively call Send() we'll end up with a
			// duplicated net.Conn in our connection pool.
			goto retry
		} else {
			return proto.Message{}, err
		}
	}

	resp, err := proto.ReadMessage(conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			conn, err = client.reconnectWithBackoff()
			if err != nil {
				return proto.Message{}, err
			}
			// We use a goto here because we need to retry sending our message,
			// however, if we recursively call Send() we'll end up with a
			// duplicated net.Conn in our connection pool.
			goto retry
		}
		return proto.Message{}, err
	}
	return resp, nil
}

// Eval sends an expression to the server for evaluation.
func (client *RemoteClient) Eval(expression string) (int64, error) {
	evalMsg := proto.NewMessageWithType(proto.CommandEval,
		proto.EvalRequest{
			Expression: expression,
		})

	resp, err := client.Send(evalMsg)
	if err != nil {
		return 0, err
	}
	if resp.Command == proto.CommandError {
		return 0, responseError(resp)
	}

	result := proto.ResultResponse{}
	if err = result.Unmarshal(resp.Data); err != nil {
		return 0, err
	}

	return result.Value, nil
}

// ServerVersion asks the server what version it is running.
func (client *RemoteClient) ServerVersion() (string, error) {
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

// Stats fetches the session counters from the server.
func (client *RemoteClient) Stats() (proto.StatsResponse, error) {
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
