/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

var (
	// CommandEval evaluates the expression in the data portion
	CommandEval = "EVAL"
	// CommandResult carries the value of a successful evaluation
	CommandResult = "RES"
	// CommandError
	CommandError = "ERR"
	// CommandVersion announces the version of either end of the connection
	CommandVersion = "VERSION"
	// CommandStats retrieves counters for the current server session
	CommandStats = "STATS"
)
