/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sync/atomic"
	"time"
)

// Session tracks counters for one server run. Connections share it, so
// everything on it must be safe for concurrent use.
type Session struct {
	Started time.Time

	evaluations atomic.Uint64
	failures    atomic.Uint64
}

type SessionStats struct {
	Evaluations uint64
	Failures    uint64
	Uptime      time.Duration
}

func NewSession() *Session {
	return &Session{Started: time.Now()}
}

func (s *Session) RecordEvaluation(failed bool) {
	s.evaluations.Add(1)
	if failed {
		s.failures.Add(1)
	}
}

func (s *Session) Stats() SessionStats {
	return SessionStats{
		Evaluations: s.evaluations.Load(),
		Failures:    s.failures.Load(),
		Uptime:      time.Since(s.Started),
	}
}
