/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package abacus

import (
	"github.com/dburkart/abacus/pkg/proto"
	"github.com/pkg/errors"
)

// Version is advertised to the server when a connection is opened.
var Version = "0.2.0"

type Client interface {
	Open(proto.ConnectionString, uint) error
	Close() error
	Send(proto.Message) (proto.Message, error)
	Eval(string) (int64, error)
	ServerVersion() (string, error)
	Stats() (proto.StatsResponse, error)
}

// NewClient creates a new Client struct which can be used to interact with
// an abacus server. The client is thread safe, but only holds one
// connection at a time. For a client pool, use NewClientPool instead.
func NewClient(connstr string) (Client, error) {
	client, err := NewClientPool(connstr, 1)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// NewClientPool creates a new Client struct which holds a pool of net.Conn
// resources open to a remote abacus server. This is useful for sending
// large volumes of expressions.
func NewClientPool(connstr string, size uint) (Client, error) {
	var client Client
	var err error

	target, err := proto.ParseConnectionString(connstr)
	if err != nil {
		return nil, err
	}

	if target.Local == true {
		client = &LocalClient{}
	} else {
		client = &RemoteClient{}
	}

	err = client.Open(target, size)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// responseError converts an ERR message into a plain error.
func responseError(msg proto.Message) error {
	response := proto.ErrResponse{}
	if err := response.Unmarshal(msg.Data); err != nil {
		return errors.Errorf("server error: %s", string(msg.Data))
	}
	return response.Err
}
