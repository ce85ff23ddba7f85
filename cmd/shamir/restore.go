package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/rizkytaufiq/rscore/shamir"
)

func restoreCommand() cli.Command {
	return cli.Command{
		Name:  "restore",
		Usage: "restore a secret from enough of its shards",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "required", Usage: "K, the number of shards required to reconstruct"},
			cli.IntFlag{Name: "total", Usage: "N, the total number of shards that were produced"},
		},
		Action: restoreAction,
	}
}

func restoreAction(c *cli.Context) error {
	in := bufio.NewScanner(os.Stdin)

	k := c.Int("required")
	if !c.IsSet("required") {
		k = promptInt(in, "Required shares (K): ")
	}
	n := c.Int("total")
	if !c.IsSet("total") {
		n = promptInt(in, "Total shards (N): ")
	}
	if n <= k || k < 1 {
		return cli.NewExitError(fmt.Sprintf("shamir: total (%d) must be greater than required (%d)", n, k), exitBadShardCounts)
	}

	log.WithFields(map[string]interface{}{"required": k, "total": n}).Debug("restoring secret")

	slots := make([]shamir.Slot, n+1)
	for i := 0; i < k; i++ {
		idx := promptInt(in, fmt.Sprintf("Shard %d of %d, which shard number (1-%d): ", i+1, k, n))
		if idx < 1 || idx > n {
			return cli.NewExitError(fmt.Sprintf("shamir: shard number %d out of range 1-%d", idx, n), exitBadShardCounts)
		}
		words := prompt(in, fmt.Sprintf("Shard %d words: ", idx))
		slots[idx] = shamir.Slot{Words: words, Present: true}
	}

	voc := shamir.DefaultVocabulary()
	secret, err := shamir.Restore(voc, slots, k)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("shamir: %v", err), exitOperationFailed)
	}

	fmt.Printf("Secret: %s\n", secret)
	return nil
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	in.Scan()
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, label string) int {
	v, _ := strconv.Atoi(prompt(in, label))
	return v
}
