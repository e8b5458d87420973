/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package eval

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	abacus "github.com/dburkart/abacus/api"
	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/proto"
	"github.com/dburkart/abacus/pkg/repl"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate expressions without a prompt",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		host := viper.GetString("abacus.host")
		client, err := abacus.NewClient(host)
		if err != nil {
			log.Fatal().Err(err).Str("host", host).Msg("unable to connect to server")
		}
		defer client.Close()

		if len(args) > 0 {
			expression := strings.Join(args, " ")
			if !evaluate(client, expression) {
				os.Exit(1)
			}
			return
		}

		// With no arguments, expressions come from stdin, one per line.
		// This is the pipe mode scripts use.
		if isatty.IsTerminal(os.Stdin.Fd()) {
			log.Fatal().Msg("expected an expression argument or piped input")
		}

		lines := bufio.NewScanner(os.Stdin)
		for lines.Scan() {
			line := strings.TrimSpace(lines.Text())
			if line == "" {
				continue
			}
			if !evaluate(client, line) {
				os.Exit(1)
			}
		}
		if err := lines.Err(); err != nil {
			log.Fatal().Err(err).Msg("error reading stdin")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "", "Render results as a table [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("abacus.eval-output", Command.Flags().Lookup("output"))
}

func evaluate(c abacus.Client, expression string) bool {
	value, err := c.Eval(expression)
	if err != nil {
		var detail parse.InputError
		if errors.As(err, &detail) {
			fmt.Fprint(os.Stderr, detail.FormatError(expression))
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return false
	}

	output := viper.GetString("abacus.eval-output")
	if output == "" {
		fmt.Println(value)
		return true
	}

	writer := repl.NewOutputWriter(os.Stdout, output)
	writer.Write(proto.ResultResponse{Code: 200, Value: value})
	return true
}
