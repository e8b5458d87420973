/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/abacus/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Evaluation server answering clients over TCP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		// Initialize the evaluation server
		srv := server.New(
			logger,
			cmd.Version,
			viper.GetInt("abacus.port"),
			viper.GetInt("abacus.prom-port"),
		)

		// Serve evaluations
		go srv.ServeEvaluations()

		// Serve the metrics endpoint
		srv.ServeMetrics()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Server port for expression evaluation")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("abacus.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("abacus.prom-port", Command.Flags().Lookup("prom-port"))
}
