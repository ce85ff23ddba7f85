// Command shamir is a CLI front end for the shamir package: generate a
// word-based secret and its distribution shards, or restore a secret
// from enough of them.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/rizkytaufiq/rscore/internal/rslog"
)

const (
	exitMissingCommand  = 1
	exitUnknownCommand  = 2
	exitBadShardCounts  = 3
	exitOperationFailed = 4
)

var log = rslog.New("cli")

func main() {
	app := cli.NewApp()
	app.Name = "shamir"
	app.Usage = "word-based Shamir secret sharing over an erasure-coding core"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log operational detail to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			rslog.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return cli.NewExitError("", exitMissingCommand)
		}
		return cli.NewExitError(fmt.Sprintf("shamir: unknown command %q", c.Args().First()), exitUnknownCommand)
	}
	app.Commands = []cli.Command{
		generateCommand(),
		restoreCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		if _, ok := err.(*cli.ExitError); !ok {
			fmt.Fprintln(os.Stderr, "shamir:", err)
			os.Exit(exitOperationFailed)
		}
	}
}
