package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rizkytaufiq/rscore/shamir"
)

func generateCommand() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "generate a secret and its distribution shards",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "required", Value: 3, Usage: "K, the number of shards required to reconstruct"},
			cli.IntFlag{Name: "total", Usage: "N, the number of shards to produce (default K+1)"},
			cli.IntFlag{Name: "words", Value: 10, Usage: "L, the secret's length in words"},
		},
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	k := c.Int("required")
	n := c.Int("total")
	if n == 0 {
		n = k + 1
	}
	l := c.Int("words")

	if n <= k {
		return cli.NewExitError(fmt.Sprintf("shamir: total (%d) must be greater than required (%d)", n, k), exitBadShardCounts)
	}

	log.WithFields(map[string]interface{}{"required": k, "total": n, "words": l}).Debug("generating secret")

	voc := shamir.DefaultVocabulary()
	secret, shards, err := shamir.Generate(voc, n, k, l)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("shamir: %v", err), exitOperationFailed)
	}

	fmt.Printf("Secret: %s\n", secret)
	for i, s := range shards {
		fmt.Printf("Shard %d: %s\n", i+1, s)
	}
	return nil
}
