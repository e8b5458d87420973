/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// sessionStatsCollector exposes the session counters to prometheus without
// requiring the handlers to write to two places.
type sessionStatsCollector struct {
	session *Session

	evaluations *prometheus.Desc
	failures    *prometheus.Desc
	uptime      *prometheus.Desc
}

func NewSessionStatsCollector(session *Session) prometheus.Collector {
	return &sessionStatsCollector{
		session: session,
		evaluations: prometheus.NewDesc(
			"abacus_session_evaluations",
			"Number of expressions evaluated over the lifetime of this session.",
			nil, nil,
		),
		failures: prometheus.NewDesc(
			"abacus_session_failures",
			"Number of evaluations which returned an error over the lifetime of this session.",
			nil, nil,
		),
		uptime: prometheus.NewDesc(
			"abacus_session_uptime_seconds",
			"Time elapsed since the session started.",
			nil, nil,
		),
	}
}

// Describe implements the prometheus.Collector interface.
func (c *sessionStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.evaluations
	ch <- c.failures
	ch <- c.uptime
}

// Collect implements the prometheus.Collector interface.
func (c *sessionStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.session.Stats()

	ch <- prometheus.MustNewConstMetric(c.evaluations, prometheus.GaugeValue, float64(stats.Evaluations))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.GaugeValue, float64(stats.Failures))
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, stats.Uptime.Seconds())
}
