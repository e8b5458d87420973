/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package spam

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	abacus "github.com/dburkart/abacus/api"
	"github.com/dburkart/abacus/pkg/proto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "spam",
	Short: "Send a burst of generated expressions to the server",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		host := viper.GetString("abacus.host")
		workers := viper.GetInt("spam.workers")
		if workers < 1 {
			workers = 1
		}

		client, err := abacus.NewClientPool(host, uint(workers))
		if err != nil {
			log.Fatal().Err(err).Str("host", host).Msg("unable to connect to server")
		}
		defer client.Close()

		timeIt("RandomExpressionTest", client, RandomExpressionTest)
	},
}

func init() {
	// Flags for this command
	Command.Flags().Int("count", 10, "Number of expressions to send")
	Command.Flags().Int("workers", 1, "Number of concurrent senders")

	// Bind flags to viper
	viper.BindPFlag("spam.count", Command.Flags().Lookup("count"))
	viper.BindPFlag("spam.workers", Command.Flags().Lookup("workers"))
}

func timeIt(name string, client abacus.Client, f func(client abacus.Client)) {
	t := time.Now()
	defer func() {
		log.Info().Str("dur", time.Since(t).String()).Str("name", name).Send()
	}()
	f(client)
}

func RandomExpressionTest(client abacus.Client) {
	count := viper.GetInt("spam.count")
	workers := viper.GetInt("spam.workers")
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		share := count / workers
		if w < count%workers {
			share++
		}

		wg.Add(1)
		go func(n, seed int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(int64(seed)))
			for i := 0; i < n; i++ {
				client.Send(proto.NewMessageWithType(
					proto.CommandEval,
					proto.EvalRequest{Expression: randomExpression(r)},
				))
			}
		}(share, w)
	}
	wg.Wait()
}

// randomExpression builds a small arithmetic expression. Divisors are
// kept non-zero so evaluations succeed.
func randomExpression(r *rand.Rand) string {
	ops := []byte{'+', '-', '*', '/'}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", r.Intn(1000))
	for i, terms := 0, r.Intn(3)+1; i < terms; i++ {
		fmt.Fprintf(&sb, " %c %d", ops[r.Intn(len(ops))], r.Intn(999)+1)
	}

	return sb.String()
}
