/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package client

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	abacus "github.com/dburkart/abacus/api"
	"github.com/dburkart/abacus/pkg/common/parse"
	"github.com/dburkart/abacus/pkg/expr"
	"github.com/dburkart/abacus/pkg/expr/ast"
	"github.com/dburkart/abacus/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "client",
		Short: "Interactive calculator prompt",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)
			output := viper.GetString("abacus.output")
			if len(filterStringSlice([]string{"csv", "text", "json"}, output)) != 1 {
				log.Fatal().Msg("unsupported output format")
			}

			host := viper.GetString("abacus.host")
			client, err := abacus.NewClient(host)
			if err != nil {
				log.Fatal().Err(err).Str("host", host).Msg("unable to connect to server")
			}
			defer client.Close()

			readlinePrompt(client, output)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()

	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format for tabular results [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("abacus.output", Command.Flags().Lookup("output"))
}

// listExpressions completes directive arguments from what has already
// been evaluated this session.
func listExpressions(h *repl.History) func(string) []string {
	return func(line string) []string {
		fields := strings.Fields(line)
		lineExpr := ""
		if len(fields) > 1 {
			lineExpr = strings.Join(fields[1:], " ")
		}

		return filterStringSlice(h.Expressions(), lineExpr)
	}
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(c abacus.Client, output string) {
	history := &repl.History{}

	// Configure the completer
	expressionItem := readline.PcItemDynamic(listExpressions(history))

	completer := readline.NewPrefixCompleter(
		readline.PcItem(":ast", expressionItem),
		readline.PcItem(":rpn", expressionItem),
		readline.PcItem(":lisp", expressionItem),
		readline.PcItem(":history"),
		readline.PcItem(":stats"),
		readline.PcItem(":help"),
		readline.PcItem(":quit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "calc> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		directive, arg, err := repl.ParseREPLCommand([]byte(line))
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		if directive == repl.DirectiveQuit {
			break
		}

		switch directive {
		case repl.DirectiveHelp:
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
		case repl.DirectiveHistory:
			writer.Write(history)
		case repl.DirectiveStats:
			stats, err := c.Stats()
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}
			writer.Write(stats)
		case repl.DirectiveAST, repl.DirectiveRPN, repl.DirectiveLisp:
			printTree(directive, arg)
		case repl.DirectiveEval:
			value, err := c.Eval(line)
			history.Add(line, value, err)
			if err != nil {
				printEvalError(err, line)
				continue
			}
			fmt.Println(value)
		}
	}
	rl.Clean()
}

func printTree(directive repl.Directive, arg string) {
	if arg == "" {
		fmt.Println("expected an expression to follow the directive")
		return
	}

	tree, err := expr.Parse(arg)
	if err != nil {
		printEvalError(err, arg)
		return
	}

	switch directive {
	case repl.DirectiveRPN:
		fmt.Println(ast.RPN(tree))
	case repl.DirectiveLisp:
		fmt.Println(ast.Lisp(tree))
	default:
		d := &ast.Dumper{}
		ast.Walk(d, tree)
		fmt.Print(d.Output)
	}
}

// printEvalError renders an evaluation failure. Errors which carry a
// location are annotated against the input they came from.
func printEvalError(err error, input string) {
	var detail parse.InputError
	if errors.As(err, &detail) {
		fmt.Print(detail.FormatError(input))
		return
	}
	fmt.Println("error:", err)
}
