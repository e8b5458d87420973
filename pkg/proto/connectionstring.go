/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"fmt"
	"net/url"
)

var Protocol = "abacus"

type ConnectionString struct {
	Local   bool
	Address string
}

// ParseConnectionString takes a connection string and parses it into the
// parts the application needs to make a connection. An empty string or
// "local" selects the in-process evaluator; anything else must be of the
// form abacus://<host:port>.
func ParseConnectionString(connStr string) (ConnectionString, error) {
	ret := ConnectionString{
		Local:   true,
		Address: "local",
	}

	if connStr == "" || connStr == "local" {
		return ret, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return ConnectionString{}, err
	}

	if u.Scheme == Protocol {
		if u.Host == "" {
			return ConnectionString{}, fmt.Errorf("missing host in connection string: %s", connStr)
		}
		ret.Local = false
		ret.Address = u.Host
		return ret, nil
	}

	return ConnectionString{}, fmt.Errorf("unrecognized scheme: %s", u.Scheme)
}
